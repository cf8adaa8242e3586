package qna_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
)

// DeleteQnA removes the entry together with its comments. Allowed for the
// author and course staff.
func (q *QnAService) DeleteQnA(
	ctx context.Context,
	userID uuid.UUID,
	courseID int32,
	order int32,
) (QnA, error) {
	membership, err := q.CourseServiceConfig.ResolveMembership(ctx, &userID, courseID)
	if err != nil {
		return QnA{}, err
	}

	qna, err := getQnAByOrder(ctx, q.DB, courseID, order)
	if err != nil {
		return QnA{}, err
	}

	if qna.CreatedBy != userID && !membership.IsStaff {
		log.Warnf("user %v tried to delete qna %v of course %v", userID, order, courseID)
		return QnA{}, agora_errors.ForbiddenAccess("You are not allowed to delete")
	}

	deleted, err := q.DB.DeleteCourseQna(ctx, qna.ID)
	if err != nil {
		return QnA{}, agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot delete qna %v", qna.ID),
		)
	}

	log.Infof("user %v deleted qna %v of course %v", userID, order, courseID)
	return dbQnAToQnA(deleted), nil
}
