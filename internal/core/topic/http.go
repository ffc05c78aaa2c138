package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/newsroom/internal/platform/request"
	"github.com/taibuivan/newsroom/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listTopics)
	router.Post("/", handler.createTopic)
}

func (handler *Handler) listTopics(writer http.ResponseWriter, request *http.Request) {
	topics, err := handler.service.ListTopics(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "topics", topics)
}

type createTopicRequest struct {
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (handler *Handler) createTopic(writer http.ResponseWriter, request *http.Request) {
	var body createTopicRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateTopic(request.Context(), CreateInput{
		Slug:        body.Slug,
		Description: body.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "topic", created)
}
