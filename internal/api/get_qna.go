package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
)

func (a *Api) HandlerGetQnA(w http.ResponseWriter, r *http.Request) {
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

	detail, err := a.QnAServiceConfig.GetQnA(
		r.Context(),
		service.GetUserIDFromContext(r.Context()),
		courseID,
		order,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, detail)
}
