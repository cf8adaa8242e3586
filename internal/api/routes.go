package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/tcp_snm/agora/middleware"
)

func NewV1Router(a *Api) *chi.Mux {
	v1 := chi.NewRouter()

	v1.Get("/healthz", a.HandlerReadiness)

	// course layer
	v1.Get("/course/{id}/leaders", middleware.OptionalJWTMiddleware(a.HandlerGetCourseLeaders))

	// qna layer
	v1.Post("/course/{id}/qna", middleware.JWTMiddleware(a.HandlerCreateQnA))
	v1.Get("/course/{id}/qna", middleware.OptionalJWTMiddleware(a.HandlerGetQnAs))
	v1.Get("/course/{id}/qna/{order}", middleware.OptionalJWTMiddleware(a.HandlerGetQnA))
	v1.Patch("/course/{id}/qna/{order}", middleware.JWTMiddleware(a.HandlerUpdateQnA))
	v1.Delete("/course/{id}/qna/{order}", middleware.JWTMiddleware(a.HandlerDeleteQnA))

	// comments
	v1.Post("/course/{id}/qna/{order}/comment", middleware.JWTMiddleware(a.HandlerCreateComment))
	v1.Delete(
		"/course/{id}/qna/{qnaOrder}/comment/{commentOrder}",
		middleware.JWTMiddleware(a.HandlerDeleteComment),
	)

	return v1
}
