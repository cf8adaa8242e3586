package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

func (a *Api) HandlerCreateQnA(w http.ResponseWriter, r *http.Request) {
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

	problemID, err := optionalQueryInt32(r, "problemId", false)
	if err != nil {
		handlerError(err, w)
		return
	}

	var request qna_service.CreateQnARequest
	if err = decodeJsonBody(r.Body, &request); err != nil {
		handlerError(err, w)
		return
	}

	qna, err := a.QnAServiceConfig.CreateQnA(r.Context(), claims.UserID, courseID, request, problemID)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, qna)
}
