package api

import (
	"net/http"
)

func (a *Api) HandlerGetCourseLeaders(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathInt32(r, "id")
	if err != nil {
		handlerError(err, w)
		return
	}

	leaders, err := a.CourseServiceConfig.GetCourseLeaders(r.Context(), courseID)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, leaders)
}
