package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tcp_snm/agora/internal/agora_errors"
)

func (u *UserService) GetUserByID(
	ctx context.Context,
	userID uuid.UUID,
) (User, error) {
	dbUser, err := u.DB.GetUserById(ctx, userID)
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch user with id %v from db", userID),
		)
		if errors.Is(err, agora_errors.ErrNotFound) {
			return User{}, agora_errors.EntityNotFound("User")
		}
		return User{}, err
	}

	u.userNames.Add(dbUser.ID, dbUser.UserName)

	return User{
		ID:        dbUser.ID,
		UserName:  dbUser.UserName,
		Email:     dbUser.Email,
		FirstName: dbUser.FirstName,
		LastName:  dbUser.LastName,
		CreatedAt: dbUser.CreatedAt,
	}, nil
}

// GetUserNames resolves display names for the given users. Unknown ids are
// left out of the result.
func (u *UserService) GetUserNames(
	ctx context.Context,
	userIDs []uuid.UUID,
) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(userIDs))
	queued := make(map[uuid.UUID]struct{})
	missing := make([]uuid.UUID, 0)
	for _, id := range userIDs {
		if _, ok := names[id]; ok {
			continue
		}
		if _, ok := queued[id]; ok {
			continue
		}
		if name, ok := u.userNames.Get(id); ok {
			names[id] = name
			continue
		}
		queued[id] = struct{}{}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return names, nil
	}

	rows, err := u.DB.GetUserNamesByIds(ctx, missing)
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch user names of %d users", len(missing)),
		)
		return nil, err
	}

	for _, row := range rows {
		u.userNames.Add(row.ID, row.UserName)
		names[row.ID] = row.UserName
	}

	return names, nil
}
