package problem_service

import (
	"time"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/database"
)

var (
	errMsgs = make(map[string]map[string]string)
)

type ProblemService struct {
	DB database.Querier
}

type Problem struct {
	ID         int32     `json:"id"`
	Title      string    `json:"title"`
	Difficulty int32     `json:"difficulty"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
