package qna_service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

// GetQnA returns the entry with its comments and records the caller as a
// reader.
func (q *QnAService) GetQnA(
	ctx context.Context,
	userID *uuid.UUID,
	courseID int32,
	order int32,
) (QnADetail, error) {
	membership, err := q.CourseServiceConfig.ResolveMembership(ctx, userID, courseID)
	if err != nil {
		return QnADetail{}, err
	}

	qna, err := getQnAByOrder(ctx, q.DB, courseID, order)
	if err != nil {
		return QnADetail{}, err
	}

	visible := visibilityFor(userID, membership)
	if !visible.allows(qna) {
		log.Warnf("user %v tried to read private qna %v of course %v", userID, order, courseID)
		return QnADetail{}, agora_errors.ForbiddenAccess("This is a private question")
	}

	var rows []database.ListCourseQnaCommentsRow
	err = q.DB.ExecTx(ctx, func(tx database.Querier) error {
		if userID != nil {
			// the read marker and the returned comments come from one locked state
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

			fresh, err := getQnAByOrder(ctx, tx, courseID, order)
			if err != nil {
				return err
			}
			if !visible.allows(fresh) {
				return agora_errors.ForbiddenAccess("This is a private question")
			}
			qna = fresh

			if !slices.Contains(qna.ReadBy, *userID) {
				err = tx.AddCourseQnaReader(ctx, database.AddCourseQnaReaderParams{
					UserID: *userID,
					ID:     qna.ID,
				})
				if err != nil {
					return agora_errors.HandleDBErrors(
						err,
						errMsgs,
						fmt.Sprintf("cannot mark qna %v as read by %v", qna.ID, *userID),
					)
				}
				qna.ReadBy = append(qna.ReadBy, *userID)
			}
		}

		var err error
		rows, err = tx.ListCourseQnaComments(ctx, qna.ID)
		if err != nil {
			return agora_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf("cannot list comments of qna %v", qna.ID),
			)
		}
		return nil
	})
	if err != nil {
		return QnADetail{}, err
	}

	comments := make([]Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, Comment{
			QnAOrder:      qna.Order,
			Order:         row.Order,
			Content:       row.Content,
			CreatedBy:     row.CreatedBy,
			AuthorName:    row.AuthorName,
			IsCourseStaff: row.IsCourseStaff,
			CreateTime:    row.CreateTime,
		})
	}

	names, err := q.UserServiceConfig.GetUserNames(ctx, []uuid.UUID{qna.CreatedBy})
	if err != nil {
		return QnADetail{}, err
	}

	return QnADetail{
		QnA:        dbQnAToQnA(qna),
		AuthorName: names[qna.CreatedBy],
		IsRead:     isReadBy(qna.ReadBy, userID),
		Comments:   comments,
	}, nil
}
