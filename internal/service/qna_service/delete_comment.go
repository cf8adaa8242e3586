package qna_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

// DeleteComment removes a comment and recomputes the resolution of its entry
// from the latest remaining comment.
func (q *QnAService) DeleteComment(
	ctx context.Context,
	userID uuid.UUID,
	courseID int32,
	qnaOrder int32,
	commentOrder int32,
) (Comment, error) {
	membership, err := q.CourseServiceConfig.ResolveMembership(ctx, &userID, courseID)
	if err != nil {
		return Comment{}, err
	}

	qna, err := getQnAByOrder(ctx, q.DB, courseID, qnaOrder)
	if err != nil {
		return Comment{}, err
	}

	comment, err := getCommentByOrder(ctx, q.DB, qna.ID, commentOrder)
	if err != nil {
		return Comment{}, err
	}

	if comment.CreatedBy != userID && !membership.IsStaff {
		log.Warnf(
			"user %v tried to delete comment %v of qna %v in course %v",
			userID, commentOrder, qnaOrder, courseID,
		)
		return Comment{}, agora_errors.ForbiddenAccess("You are not allowed to delete")
	}

	var deleted database.CourseQnaComment
	err = q.DB.ExecTx(ctx, func(tx database.Querier) error {
		// same lock as CreateComment
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

		removed, err := tx.DeleteCourseQnaComment(ctx, comment.ID)
		if err != nil {
			err = agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot delete comment %v", comment.ID),
			)
			if errors.Is(err, agora_errors.ErrNotFound) {
				return agora_errors.EntityNotFound("CourseQnAComment")
			}
			return err
		}
		deleted = removed

		var latest *database.CourseQnaComment
		last, err := tx.GetLatestCourseQnaComment(ctx, qna.ID)
		switch {
		case err == nil:
			latest = &last
		case errors.Is(err, pgx.ErrNoRows):
			// no comments left
		default:
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot fetch latest comment of qna %v", qna.ID),
			)
		}

		err = tx.SetCourseQnaResolved(ctx, database.SetCourseQnaResolvedParams{
			ID:         qna.ID,
			IsResolved: resolutionAfterDelete(latest),
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

	return dbCommentToComment(qna.Order, deleted), nil
}
