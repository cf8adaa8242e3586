package qna_service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/email"
	"golang.org/x/sync/errgroup"
)

func TestCreateCommentResolution(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)

	steps := []struct {
		author   uuid.UUID
		resolved bool
	}{
		{author: f.member2, resolved: false},
		{author: f.staff, resolved: true},
		{author: f.member, resolved: false},
		{author: f.outsider, resolved: false},
		{author: f.staff, resolved: true},
	}

	for i, step := range steps {
		comment := f.comment(t, step.author, 1, "comment")
		if comment.Order != int32(i+1) {
			t.Errorf("expected comment order %d, got %d", i+1, comment.Order)
		}
		if comment.IsCourseStaff != step.resolved {
			t.Errorf("comment %d: expected staff snapshot %v", i+1, step.resolved)
		}
		stored, _ := f.store.QnA(f.course, 1)
		if stored.IsResolved != step.resolved {
			t.Errorf("comment %d: expected resolved %v, got %v", i+1, step.resolved, stored.IsResolved)
		}
		if !slices.Equal(stored.ReadBy, []uuid.UUID{step.author}) {
			t.Errorf("comment %d: expected readBy [commenter], got %v", i+1, stored.ReadBy)
		}
	}
}

func TestCreateCommentFailures(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)

	_, err := f.svc.CreateComment(context.Background(), f.member, 999, 1, CreateCommentRequest{Content: "hi"})
	if !errors.Is(err, agora_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for course, got %v", err)
	}
	_, err = f.svc.CreateComment(context.Background(), f.member, f.course, 4, CreateCommentRequest{Content: "hi"})
	if !errors.Is(err, agora_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for qna, got %v", err)
	}
	_, err = f.svc.CreateComment(context.Background(), f.member, f.course, 1, CreateCommentRequest{Content: " "})
	if !errors.Is(err, agora_errors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateCommentRollsBack(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	stored, _ := f.store.QnA(f.course, 1)
	f.store.FailOn("MarkCourseQnaCommented", errors.New("connection reset"))

	_, err := f.svc.CreateComment(context.Background(), f.staff, f.course, 1, CreateCommentRequest{Content: "answer"})
	if !errors.Is(err, agora_errors.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if n := f.store.CommentCount(stored.ID); n != 0 {
		t.Errorf("expected the comment insert to be rolled back, %d comments stored", n)
	}
	after, _ := f.store.QnA(f.course, 1)
	if after.IsResolved {
		t.Error("qna must stay unresolved")
	}
}

func TestCreateCommentConcurrentOrders(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	const n = 20

	var g errgroup.Group
	for range n {
		g.Go(func() error {
			_, err := f.svc.CreateComment(context.Background(), f.member2, f.course, 1, CreateCommentRequest{Content: "me too"})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	detail, err := f.svc.GetQnA(context.Background(), &f.staff, f.course, 1)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(detail.Comments) != n {
		t.Fatalf("expected %d comments, got %d", n, len(detail.Comments))
	}
	for i, c := range detail.Comments {
		if c.Order != int32(i+1) {
			t.Fatalf("expected comment orders 1..%d, got %d at %d", n, c.Order, i)
		}
	}
}

func TestDeleteCommentResolution(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	f.comment(t, f.member, 1, "first")  // 1
	f.comment(t, f.staff, 1, "answer")  // 2
	f.comment(t, f.member, 1, "thanks") // 3

	resolved := func() bool {
		stored, _ := f.store.QnA(f.course, 1)
		return stored.IsResolved
	}

	// latest is the member's, so deleting it surfaces the staff answer
	deleted, err := f.svc.DeleteComment(context.Background(), f.member, f.course, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if deleted.Order != 3 || deleted.Content != "thanks" {
		t.Errorf("unexpected deleted comment %+v", deleted)
	}
	if !resolved() {
		t.Error("expected resolved once the staff answer is latest")
	}

	if _, err := f.svc.DeleteComment(context.Background(), f.staff, f.course, 1, 2); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resolved() {
		t.Error("expected unresolved once a member comment is latest")
	}

	// staff may delete comments of others
	if _, err := f.svc.DeleteComment(context.Background(), f.staff, f.course, 1, 1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resolved() {
		t.Error("expected unresolved with no comments left")
	}
}

func TestDeleteCommentKeepsResolvedWhenOlderRemoved(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	f.comment(t, f.member, 1, "first")
	f.comment(t, f.staff, 1, "answer")

	if _, err := f.svc.DeleteComment(context.Background(), f.member, f.course, 1, 1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	stored, _ := f.store.QnA(f.course, 1)
	if !stored.IsResolved {
		t.Error("expected resolved while the staff answer is still latest")
	}

	next := f.comment(t, f.member, 1, "follow up")
	if next.Order != 3 {
		t.Errorf("expected order 3 after a gap, got %d", next.Order)
	}
}

func TestDeleteCommentLocksQnA(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	f.comment(t, f.staff, 1, "answer")
	f.comment(t, f.member, 1, "thanks")

	qna, _ := f.store.QnA(f.course, 1)
	rec := f.recordLocks()
	if _, err := f.svc.DeleteComment(context.Background(), f.member, f.course, 1, 2); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if locks := rec.qnaLocks(); !slices.Equal(locks, []int32{qna.ID}) {
		t.Fatalf("expected the qna row to be locked once, got %v", locks)
	}
	stored, _ := f.store.QnA(f.course, 1)
	if !stored.IsResolved {
		t.Error("expected resolved once the staff answer is latest")
	}
}

func TestDeleteCommentFailures(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "question", false, nil)
	f.comment(t, f.member, 1, "mine")

	tests := []struct {
		name         string
		user         uuid.UUID
		course       int32
		qnaOrder     int32
		commentOrder int32
		target       error
	}{
		{name: "other member", user: f.member2, course: f.course, qnaOrder: 1, commentOrder: 1, target: agora_errors.ErrForbidden},
		{name: "unknown course", user: f.member, course: 999, qnaOrder: 1, commentOrder: 1, target: agora_errors.ErrNotFound},
		{name: "unknown qna", user: f.member, course: f.course, qnaOrder: 2, commentOrder: 1, target: agora_errors.ErrNotFound},
		{name: "unknown comment", user: f.member, course: f.course, qnaOrder: 1, commentOrder: 2, target: agora_errors.ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.DeleteComment(context.Background(), tc.user, tc.course, tc.qnaOrder, tc.commentOrder)
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestStaffAnswerNotifiesAuthor(t *testing.T) {
	f := newFixture(t)
	f.createQnA(t, f.member, "why TLE", false, nil)
	f.createQnA(t, f.staff, "announcement", false, nil)

	f.comment(t, f.member, 1, "bump")
	f.comment(t, f.staff, 2, "staff on own question")
	if n := len(f.mailer.requests()); n != 0 {
		t.Fatalf("expected no mail, got %d", n)
	}

	f.comment(t, f.staff, 1, "use a faster algorithm")
	sent := f.mailer.requests()
	if len(sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(sent))
	}
	if !slices.Equal(sent[0].To, []string{"member@example.com"}) {
		t.Errorf("unexpected recipients %v", sent[0].To)
	}
	if sent[0].Purpose != email.PurposeQnAAnswered {
		t.Errorf("unexpected purpose %v", sent[0].Purpose)
	}
}

type failingMailer struct{}

func (failingMailer) Send(ctx context.Context, req email.EmailRequest) error {
	return agora_errors.ErrEmailServiceStopped
}

func TestNotificationFailureDoesNotFailComment(t *testing.T) {
	f := newFixture(t)
	f.svc.Mailer = failingMailer{}
	f.createQnA(t, f.member, "question", false, nil)

	if _, err := f.svc.CreateComment(context.Background(), f.staff, f.course, 1, CreateCommentRequest{Content: "answer"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
