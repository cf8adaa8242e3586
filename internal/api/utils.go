package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
)

const maxBodyBytes = 1 << 20

func respondWithJson(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Errorf("cannot write response, %v", err)
	}
}

// marshalAndRespond is respondWithJson for values that still need encoding.
func marshalAndRespond(w http.ResponseWriter, status int, v any) {
	bytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal %T, %v", v, err)
		http.Error(w, agora_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	respondWithJson(w, status, bytes)
}

func handlerError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, agora_errors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, agora_errors.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, agora_errors.ErrUnAuthenticated):
		http.Error(w, agora_errors.ErrUnAuthenticated.Error(), http.StatusUnauthorized)
	case errors.Is(err, agora_errors.ErrInvalidRequest), errors.Is(err, agora_errors.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, agora_errors.ErrEntityAlreadyExist):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		// internal details stay in the logs
		log.Errorf("unhandled error, %v", err)
		http.Error(w, agora_errors.ErrInternal.Error(), http.StatusInternalServerError)
	}
}

func decodeJsonBody(body io.Reader, v any) error {
	decoder := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w, cannot decode request body, %v", agora_errors.ErrInvalidRequest, err)
	}
	return nil
}

func parsePositiveInt32(value string, name string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w, %s must be a positive integer", agora_errors.ErrInvalidRequest, name)
	}
	return int32(n), nil
}

func pathInt32(r *http.Request, name string) (int32, error) {
	return parsePositiveInt32(chi.URLParam(r, name), name)
}

// optionalQueryInt32 returns nil when the parameter is absent.
func optionalQueryInt32(r *http.Request, name string, allowZero bool) (*int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return nil, fmt.Errorf("%w, %s must be a positive integer", agora_errors.ErrInvalidRequest, name)
	}
	v := int32(n)
	return &v, nil
}

func optionalQueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	switch strings.ToLower(raw) {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	return nil, fmt.Errorf("%w, %s must be true or false", agora_errors.ErrInvalidRequest, name)
}

// splitCSV drops empty items, so "a,,b" and "a,b" are the same list.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseCSVInt32(raw string, name string) ([]int32, error) {
	items := splitCSV(raw)
	if len(items) == 0 {
		return nil, nil
	}
	values := make([]int32, 0, len(items))
	for _, item := range items {
		v, err := parsePositiveInt32(item, name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
