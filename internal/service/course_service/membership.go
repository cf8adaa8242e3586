package course_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

// ResolveMembership checks that the course exists and reports how the user
// relates to it. Anonymous users are neither members nor staff.
func (c *CourseService) ResolveMembership(
	ctx context.Context,
	userID *uuid.UUID,
	courseID int32,
) (Membership, error) {
	return ResolveMembershipWith(ctx, c.DB, userID, courseID)
}

// ResolveMembershipWith is ResolveMembership over q, so it can run inside a
// transaction.
func ResolveMembershipWith(
	ctx context.Context,
	q database.Querier,
	userID *uuid.UUID,
	courseID int32,
) (Membership, error) {
	if _, err := getCourse(ctx, q, courseID); err != nil {
		return Membership{}, err
	}

	if userID == nil {
		return Membership{}, nil
	}

	userGroup, err := q.GetUserGroup(ctx, database.GetUserGroupParams{
		UserID:  *userID,
		GroupID: courseID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Membership{}, nil
		}
		return Membership{}, agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch membership of user %v in course %v", *userID, courseID),
		)
	}

	return Membership{
		IsMember: true,
		IsStaff:  userGroup.IsGroupLeader,
	}, nil
}
