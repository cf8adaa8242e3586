package qna_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/course_service"
)

func (q *QnAService) CreateQnA(
	ctx context.Context,
	userID uuid.UUID,
	courseID int32,
	req CreateQnARequest,
	problemID *int32,
) (QnA, error) {
	if err := service.ValidateInput(req); err != nil {
		return QnA{}, err
	}
	if problemID != nil && *problemID <= 0 {
		return QnA{}, fmt.Errorf("%w, problemId must be a positive integer", agora_errors.ErrInvalidInput)
	}

	var created database.CourseQna
	err := q.DB.ExecTx(ctx, func(tx database.Querier) error {
		// concurrent creators in the same course wait here
		if _, err := tx.LockCourseById(ctx, courseID); err != nil {
			err = agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot lock course %v", courseID),
			)
			if errors.Is(err, agora_errors.ErrNotFound) {
				return agora_errors.EntityNotFound("Course")
			}
			return err
		}

		membership, err := course_service.ResolveMembershipWith(ctx, tx, &userID, courseID)
		if err != nil {
			return err
		}
		if !membership.IsMember {
			log.Warnf("user %v tried to post a question in course %v without membership", userID, courseID)
			return agora_errors.ForbiddenAccess("only course members can ask questions")
		}

		category := database.CourseQnaCategoryGeneral
		if problemID != nil {
			if _, err := q.ProblemServiceConfig.GetProblemWith(ctx, tx, *problemID); err != nil {
				return err
			}
			category = database.CourseQnaCategoryProblem
		}

		maxOrder, err := tx.GetMaxCourseQnaOrder(ctx, courseID)
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot fetch max qna order of course %v", courseID),
			)
		}

		isPrivate := false
		if req.IsPrivate != nil {
			isPrivate = *req.IsPrivate
		}

		created, err = tx.CreateCourseQna(ctx, database.CreateCourseQnaParams{
			GroupID:   courseID,
			Order:     nextOrder(maxOrder),
			Title:     req.Title,
			Content:   req.Content,
			CreatedBy: userID,
			IsPrivate: isPrivate,
			Category:  category,
			ProblemID: problemID,
			ReadBy:    []uuid.UUID{userID},
		})
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot create qna in course %v", courseID),
			)
		}
		return nil
	})
	if err != nil {
		return QnA{}, err
	}

	log.Infof("user %v created qna %v in course %v", userID, created.Order, courseID)
	return dbQnAToQnA(created), nil
}
