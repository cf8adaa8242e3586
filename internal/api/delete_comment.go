package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
)

func (a *Api) HandlerDeleteComment(w http.ResponseWriter, r *http.Request) {
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
	qnaOrder, err := pathInt32(r, "qnaOrder")
	if err != nil {
		handlerError(err, w)
		return
	}
	commentOrder, err := pathInt32(r, "commentOrder")
	if err != nil {
		handlerError(err, w)
		return
	}

	comment, err := a.QnAServiceConfig.DeleteComment(r.Context(), claims.UserID, courseID, qnaOrder, commentOrder)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, comment)
}
