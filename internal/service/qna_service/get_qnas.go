package qna_service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service"
)

func (q *QnAService) GetQnAs(
	ctx context.Context,
	userID *uuid.UUID,
	courseID int32,
	filter QnAFilter,
) ([]QnASummary, error) {
	if err := service.ValidateInput(filter); err != nil {
		return nil, err
	}

	membership, err := q.CourseServiceConfig.ResolveMembership(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	vis := visibilityFor(userID, membership)

	params := database.ListCourseQnasParams{
		GroupID:      courseID,
		Unrestricted: vis.unrestricted,
		ViewerID:     vis.viewerID,
		IsResolved:   filter.IsAnswered,
		Cursor:       filter.Cursor,
		Take:         filter.Take,
	}
	if len(filter.Categories) > 0 {
		params.FilterCategories = true
		for _, category := range filter.Categories {
			switch category {
			case CategoryGeneral:
				params.IncludeGeneral = true
			case CategoryProblem:
				params.IncludeProblem = true
			}
		}
		// problem ids only narrow the problem category
		if params.IncludeProblem {
			params.ProblemIds = filter.ProblemIDs
		}
	}
	if filter.Search != nil {
		if search := strings.TrimSpace(*filter.Search); search != "" {
			escaped := escapeLike(search)
			params.Search = &escaped
		}
	}

	rows, err := q.DB.ListCourseQnas(ctx, params)
	if err != nil {
		return nil, agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot list qnas of course %v", courseID),
		)
	}

	summaries := make([]QnASummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, QnASummary{
			CourseID:     row.GroupID,
			Order:        row.Order,
			Title:        row.Title,
			Content:      row.Content,
			CreatedBy:    row.CreatedBy,
			AuthorName:   row.AuthorName,
			IsPrivate:    row.IsPrivate,
			IsResolved:   row.IsResolved,
			Category:     Category(row.Category),
			ProblemID:    row.ProblemID,
			IsRead:       isReadBy(row.ReadBy, userID),
			CommentCount: row.CommentCount,
			CreateTime:   row.CreateTime,
		})
	}
	return summaries, nil
}
