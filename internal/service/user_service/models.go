package user_service

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/database"
)

const DefaultUserNameCacheSize = 1024

var (
	errMsgs = make(map[string]map[string]string)
)

type UserService struct {
	DB database.Querier

	// user names never change, so they are safe to keep around
	userNames *lru.Cache[uuid.UUID, string]
}

type User struct {
	ID        uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserService(db database.Querier, cacheSize int) *UserService {
	if cacheSize <= 0 {
		log.Warnf("invalid user name cache size %d. using default %d", cacheSize, DefaultUserNameCacheSize)
		cacheSize = DefaultUserNameCacheSize
	}
	cache, err := lru.New[uuid.UUID, string](cacheSize)
	if err != nil {
		// only fails for non-positive sizes
		panic(err)
	}
	return &UserService{
		DB:        db,
		userNames: cache,
	}
}
