package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

func (p *ProblemService) GetProblemByID(
	ctx context.Context,
	id int32,
) (Problem, error) {
	return p.GetProblemWith(ctx, p.DB, id)
}

// GetProblemWith looks the problem up through q, which may be a transaction.
func (p *ProblemService) GetProblemWith(
	ctx context.Context,
	q database.Querier,
	id int32,
) (Problem, error) {
	dbProblem, err := q.GetProblemById(ctx, id)
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch problem with id %v", id),
		)
		if errors.Is(err, agora_errors.ErrNotFound) {
			return Problem{}, agora_errors.EntityNotFound("Problem")
		}
		return Problem{}, err
	}

	return Problem{
		ID:         dbProblem.ID,
		Title:      dbProblem.Title,
		Difficulty: dbProblem.Difficulty,
		CreatedBy:  dbProblem.CreatedBy,
		CreatedAt:  dbProblem.CreatedAt,
	}, nil
}
