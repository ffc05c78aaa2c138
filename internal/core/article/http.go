package article

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

// RegisterRoutes mounts the article routes. Nested comment routes are added
// by the comment handler on the same router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArticles)
	router.Post("/", handler.createArticle)
	router.Get("/{article_id}", handler.getArticle)
	router.Patch("/{article_id}", handler.updateVotes)
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()

	query := ListQuery{
		SortBy: values.Get("sort_by"),
		Order:  values.Get("order"),
		Limit:  values.Get("limit"),
		Page:   values.Get("p"),
	}
	if values.Has("topic") {
		topic := values.Get("topic")
		query.Topic = &topic
	}

	articles, meta, err := handler.service.ListArticles(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "articles", articles, meta)
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "article", found)
}

type createArticleRequest struct {
	Author *string `json:"author"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Topic  *string `json:"topic"`
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var body createArticleRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArticle(request.Context(), CreateInput{
		Author: body.Author,
		Title:  body.Title,
		Body:   body.Body,
		Topic:  body.Topic,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "article", created)
}

type votesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

func (handler *Handler) updateVotes(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "article_id")
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

	updated, err := handler.service.UpdateVotes(request.Context(), articleID, delta)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "article", updated)
}
