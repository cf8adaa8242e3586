package qna_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service"
)

// UpdateQnA lets the author change the title, content or privacy of an
// entry. Staff cannot edit questions of others.
func (q *QnAService) UpdateQnA(
	ctx context.Context,
	userID uuid.UUID,
	courseID int32,
	order int32,
	req UpdateQnARequest,
) (QnA, error) {
	if err := service.ValidateInput(req); err != nil {
		return QnA{}, err
	}
	if req.Title == nil && req.Content == nil && req.IsPrivate == nil {
		return QnA{}, fmt.Errorf("%w, nothing to update", agora_errors.ErrInvalidInput)
	}

	if _, err := q.CourseServiceConfig.GetCourse(ctx, courseID); err != nil {
		return QnA{}, err
	}

	qna, err := getQnAByOrder(ctx, q.DB, courseID, order)
	if err != nil {
		return QnA{}, err
	}

	if qna.CreatedBy != userID {
		log.Warnf("user %v tried to update qna %v of course %v", userID, order, courseID)
		return QnA{}, agora_errors.ForbiddenAccess("only the author can update this question")
	}

	updated, err := q.DB.UpdateCourseQna(ctx, database.UpdateCourseQnaParams{
		Title:     req.Title,
		Content:   req.Content,
		IsPrivate: req.IsPrivate,
		ID:        qna.ID,
	})
	if err != nil {
		return QnA{}, agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot update qna %v", qna.ID),
		)
	}

	return dbQnAToQnA(updated), nil
}
