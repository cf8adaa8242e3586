package api_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/service/course_service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

type mockQnAService struct {
	createQnAFn     func(ctx context.Context, userID uuid.UUID, courseID int32, req qna_service.CreateQnARequest, problemID *int32) (qna_service.QnA, error)
	getQnAsFn       func(ctx context.Context, userID *uuid.UUID, courseID int32, filter qna_service.QnAFilter) ([]qna_service.QnASummary, error)
	getQnAFn        func(ctx context.Context, userID *uuid.UUID, courseID int32, order int32) (qna_service.QnADetail, error)
	updateQnAFn     func(ctx context.Context, userID uuid.UUID, courseID int32, order int32, req qna_service.UpdateQnARequest) (qna_service.QnA, error)
	deleteQnAFn     func(ctx context.Context, userID uuid.UUID, courseID int32, order int32) (qna_service.QnA, error)
	createCommentFn func(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, req qna_service.CreateCommentRequest) (qna_service.Comment, error)
	deleteCommentFn func(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, commentOrder int32) (qna_service.Comment, error)
}

func (m *mockQnAService) CreateQnA(ctx context.Context, userID uuid.UUID, courseID int32, req qna_service.CreateQnARequest, problemID *int32) (qna_service.QnA, error) {
	if m.createQnAFn != nil {
		return m.createQnAFn(ctx, userID, courseID, req, problemID)
	}
	return qna_service.QnA{}, nil
}

func (m *mockQnAService) GetQnAs(ctx context.Context, userID *uuid.UUID, courseID int32, filter qna_service.QnAFilter) ([]qna_service.QnASummary, error) {
	if m.getQnAsFn != nil {
		return m.getQnAsFn(ctx, userID, courseID, filter)
	}
	return nil, nil
}

func (m *mockQnAService) GetQnA(ctx context.Context, userID *uuid.UUID, courseID int32, order int32) (qna_service.QnADetail, error) {
	if m.getQnAFn != nil {
		return m.getQnAFn(ctx, userID, courseID, order)
	}
	return qna_service.QnADetail{}, nil
}

func (m *mockQnAService) UpdateQnA(ctx context.Context, userID uuid.UUID, courseID int32, order int32, req qna_service.UpdateQnARequest) (qna_service.QnA, error) {
	if m.updateQnAFn != nil {
		return m.updateQnAFn(ctx, userID, courseID, order, req)
	}
	return qna_service.QnA{}, nil
}

func (m *mockQnAService) DeleteQnA(ctx context.Context, userID uuid.UUID, courseID int32, order int32) (qna_service.QnA, error) {
	if m.deleteQnAFn != nil {
		return m.deleteQnAFn(ctx, userID, courseID, order)
	}
	return qna_service.QnA{}, nil
}

func (m *mockQnAService) CreateComment(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, req qna_service.CreateCommentRequest) (qna_service.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, userID, courseID, qnaOrder, req)
	}
	return qna_service.Comment{}, nil
}

func (m *mockQnAService) DeleteComment(ctx context.Context, userID uuid.UUID, courseID int32, qnaOrder int32, commentOrder int32) (qna_service.Comment, error) {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, userID, courseID, qnaOrder, commentOrder)
	}
	return qna_service.Comment{}, nil
}

type mockCourseService struct {
	getCourseLeadersFn func(ctx context.Context, courseID int32) ([]course_service.Member, error)
}

func (m *mockCourseService) GetCourseLeaders(ctx context.Context, courseID int32) ([]course_service.Member, error) {
	if m.getCourseLeadersFn != nil {
		return m.getCourseLeadersFn(ctx, courseID)
	}
	return nil, nil
}
