package qna_service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/service/course_service"
)

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":    "plain",
		"100%":     `100\%`,
		"a_b":      `a\_b`,
		`back\`:    `back\\`,
		`%_\mixed`: `\%\_\\mixed`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVisibilityFor(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	private := database.CourseQna{IsPrivate: true, CreatedBy: author}
	public := database.CourseQna{CreatedBy: author}

	tests := []struct {
		name       string
		user       *uuid.UUID
		membership course_service.Membership
		private    bool
	}{
		{name: "staff", user: &stranger, membership: course_service.Membership{IsMember: true, IsStaff: true}, private: true},
		{name: "author", user: &author, membership: course_service.Membership{IsMember: true}, private: true},
		{name: "stranger", user: &stranger, membership: course_service.Membership{IsMember: true}},
		{name: "anonymous", user: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vis := visibilityFor(tc.user, tc.membership)
			if !vis.allows(public) {
				t.Error("public entries are always visible")
			}
			if vis.allows(private) != tc.private {
				t.Errorf("expected private visibility %v", tc.private)
			}
		})
	}
}

func TestResolution(t *testing.T) {
	if resolutionAfterCreate(false) || !resolutionAfterCreate(true) {
		t.Error("resolution after create must follow the staff flag")
	}
	if resolutionAfterDelete(nil) {
		t.Error("no comments means unresolved")
	}
	if !resolutionAfterDelete(&database.CourseQnaComment{IsCourseStaff: true}) {
		t.Error("staff latest comment means resolved")
	}
	if resolutionAfterDelete(&database.CourseQnaComment{}) {
		t.Error("member latest comment means unresolved")
	}
	if nextOrder(0) != 1 || nextOrder(7) != 8 {
		t.Error("orders continue from the maximum")
	}
}
