package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

func (a *Api) HandlerCreateComment(w http.ResponseWriter, r *http.Request) {
	claims, err := service.GetClaimsFromContext(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	courseID, err := pathInt32(r, "id")
	if err != nil {
		handlerError(err, w)
		return
	}
	order, err := pathInt32(r, "order")
	if err != nil {
		handlerError(err, w)
		return
	}

	var request qna_service.CreateCommentRequest
	if err = decodeJsonBody(r.Body, &request); err != nil {
		handlerError(err, w)
		return
	}

	comment, err := a.QnAServiceConfig.CreateComment(r.Context(), claims.UserID, courseID, order, request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, comment)
}
