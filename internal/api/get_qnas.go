package api

import (
	"net/http"

	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

func (a *Api) HandlerGetQnAs(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt32(r, "id")
	if err != nil {
		handlerError(err, w)
		return
	}

	filter, err := qnaFilterFromQuery(r)
	if err != nil {
		handlerError(err, w)
		return
	}

	summaries, err := a.QnAServiceConfig.GetQnAs(
		r.Context(),
		service.GetUserIDFromContext(r.Context()),
		courseID,
		filter,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, summaries)
}

func qnaFilterFromQuery(r *http.Request) (qna_service.QnAFilter, error) {
	var (
		filter qna_service.QnAFilter
		err    error
	)
	query := r.URL.Query()

	if filter.Week, err = optionalQueryInt32(r, "week", false); err != nil {
		return filter, err
	}
	for _, category := range splitCSV(query.Get("categories")) {
		filter.Categories = append(filter.Categories, qna_service.Category(category))
	}
	if filter.ProblemIDs, err = parseCSVInt32(query.Get("problemIds"), "problemIds"); err != nil {
		return filter, err
	}
	if filter.IsAnswered, err = optionalQueryBool(r, "isAnswered"); err != nil {
		return filter, err
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	if filter.Cursor, err = optionalQueryInt32(r, "cursor", true); err != nil {
		return filter, err
	}
	if filter.Take, err = optionalQueryInt32(r, "take", false); err != nil {
		return filter, err
	}
	return filter, nil
}
