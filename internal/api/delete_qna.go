package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
)

func (a *Api) HandlerDeleteQnA(w http.ResponseWriter, r *http.Request) {
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

	qna, err := a.QnAServiceConfig.DeleteQnA(r.Context(), claims.UserID, courseID, order)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, qna)
}
