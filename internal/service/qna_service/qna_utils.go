package qna_service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service/course_service"
)

type visibility struct {
	unrestricted bool
	viewerID     uuid.NullUUID
}

// visibilityFor gives staff every entry. Others see public entries and, when
// signed in, their own private ones.
func visibilityFor(userID *uuid.UUID, membership course_service.Membership) visibility {
	if membership.IsStaff {
		return visibility{unrestricted: true}
	}
	if userID == nil {
		return visibility{}
	}
	return visibility{viewerID: uuid.NullUUID{UUID: *userID, Valid: true}}
}

func (v visibility) allows(qna database.CourseQna) bool {
	if v.unrestricted || !qna.IsPrivate {
		return true
	}
	return v.viewerID.Valid && v.viewerID.UUID == qna.CreatedBy
}

// nextOrder assigns orders from 1. Deleted orders are never reused as long
// as the maximum survives. Deleting the entry holding the maximum lets its
// order be handed out again.
func nextOrder(max int32) int32 {
	return max + 1
}

func resolutionAfterCreate(isStaff bool) bool {
	return isStaff
}

// resolutionAfterDelete takes the latest remaining comment, nil when none
// are left.
func resolutionAfterDelete(latest *database.CourseQnaComment) bool {
	if latest == nil {
		return false
	}
	return latest.IsCourseStaff
}

// anonymous viewers are shown everything as read
func isReadBy(readBy []uuid.UUID, userID *uuid.UUID) bool {
	return userID == nil || slices.Contains(readBy, *userID)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func getQnAByOrder(
	ctx context.Context,
	q database.Querier,
	courseID int32,
	order int32,
) (database.CourseQna, error) {
	qna, err := q.GetCourseQnaByOrder(ctx, database.GetCourseQnaByOrderParams{
		GroupID: courseID,
		Order:   order,
	})
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch qna %v of course %v", order, courseID),
		)
		if errors.Is(err, agora_errors.ErrNotFound) {
			return database.CourseQna{}, agora_errors.EntityNotFound("CourseQnA")
		}
		return database.CourseQna{}, err
	}
	return qna, nil
}

func getCommentByOrder(
	ctx context.Context,
	q database.Querier,
	qnaID int32,
	order int32,
) (database.CourseQnaComment, error) {
	comment, err := q.GetCourseQnaCommentByOrder(ctx, database.GetCourseQnaCommentByOrderParams{
		CourseQnaID: qnaID,
		Order:       order,
	})
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch comment %v of qna %v", order, qnaID),
		)
		if errors.Is(err, agora_errors.ErrNotFound) {
			return database.CourseQnaComment{}, agora_errors.EntityNotFound("CourseQnAComment")
		}
		return database.CourseQnaComment{}, err
	}
	return comment, nil
}

func dbQnAToQnA(qna database.CourseQna) QnA {
	readBy := qna.ReadBy
	if readBy == nil {
		readBy = []uuid.UUID{}
	}
	return QnA{
		CourseID:   qna.GroupID,
		Order:      qna.Order,
		Title:      qna.Title,
		Content:    qna.Content,
		CreatedBy:  qna.CreatedBy,
		IsPrivate:  qna.IsPrivate,
		IsResolved: qna.IsResolved,
		Category:   Category(qna.Category),
		ProblemID:  qna.ProblemID,
		ReadBy:     readBy,
		CreateTime: qna.CreateTime,
		UpdateTime: qna.UpdateTime,
	}
}

func dbCommentToComment(qnaOrder int32, comment database.CourseQnaComment) Comment {
	return Comment{
		QnAOrder:      qnaOrder,
		Order:         comment.Order,
		Content:       comment.Content,
		CreatedBy:     comment.CreatedBy,
		IsCourseStaff: comment.IsCourseStaff,
		CreateTime:    comment.CreateTime,
	}
}
