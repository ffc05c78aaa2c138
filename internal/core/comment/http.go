package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/newsroom/internal/platform/request"
	"github.com/taibuivan/newsroom/internal/platform/respond"
	"github.com/taibuivan/newsroom/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the routes addressed by comment id.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Patch("/{comment_id}", handler.updateVotes)
	router.Delete("/{comment_id}", handler.deleteComment)
}

// RegisterArticleRoutes mounts the routes nested under an article, expecting
// an {article_id} parameter on the parent route.
func (handler *Handler) RegisterArticleRoutes(router chi.Router) {
	router.Get("/", handler.listComments)
	router.Post("/", handler.createComment)
}

func (handler *Handler) listComments(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, meta, err := handler.service.ListComments(request.Context(), articleID,
		requestutil.Query(request, "limit"),
		requestutil.Query(request, "p"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "comments", comments, meta)
}

type createCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body createCommentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateComment(request.Context(), CreateInput{
		ArticleID: articleID,
		Username:  body.Username,
		Body:      body.Body,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "comment", created)
}

type votesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body votesRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	delta, err := validate.IntFromJSON(body.IncVotes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateVotes(request.Context(), commentID, delta)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "comment", updated)
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "comment_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComment(request.Context(), commentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
