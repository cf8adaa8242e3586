package qna_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service"
)

// CreateComment appends a comment to the entry. The entry becomes resolved
// iff the commenter is staff and only the commenter has read it afterwards.
func (q *QnAService) CreateComment(
	ctx context.Context,
	userID uuid.UUID,
	courseID int32,
	qnaOrder int32,
	req CreateCommentRequest,
) (Comment, error) {
	if err := service.ValidateInput(req); err != nil {
		return Comment{}, err
	}

	// membership is only used for the staff snapshot
	membership, err := q.CourseServiceConfig.ResolveMembership(ctx, &userID, courseID)
	if err != nil {
		return Comment{}, err
	}

	qna, err := getQnAByOrder(ctx, q.DB, courseID, qnaOrder)
	if err != nil {
		return Comment{}, err
	}

	var created database.CourseQnaComment
	err = q.DB.ExecTx(ctx, func(tx database.Querier) error {
		// concurrent commenters on the same entry wait here
		if _, err := tx.LockCourseQnaById(ctx, qna.ID); err != nil {
			err = agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot lock qna %v", qna.ID),
			)
			if errors.Is(err, agora_errors.ErrNotFound) {
				return agora_errors.EntityNotFound("CourseQnA")
			}
			return err
		}

		maxOrder, err := tx.GetMaxCourseQnaCommentOrder(ctx, qna.ID)
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot fetch max comment order of qna %v", qna.ID),
			)
		}

		created, err = tx.CreateCourseQnaComment(ctx, database.CreateCourseQnaCommentParams{
			CourseQnaID:   qna.ID,
			Order:         nextOrder(maxOrder),
			Content:       req.Content,
			CreatedBy:     userID,
			IsCourseStaff: membership.IsStaff,
		})
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot create comment on qna %v", qna.ID),
			)
		}

		_, err = tx.MarkCourseQnaCommented(ctx, database.MarkCourseQnaCommentedParams{
			IsResolved: resolutionAfterCreate(membership.IsStaff),
			UserID:     userID,
			ID:         qna.ID,
		})
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot update resolution of qna %v", qna.ID),
			)
		}
		return nil
	})
	if err != nil {
		return Comment{}, err
	}

	comment := dbCommentToComment(qna.Order, created)
	if membership.IsStaff && qna.CreatedBy != userID {
		q.notifyAnswered(ctx, qna, comment)
	}
	return comment, nil
}
