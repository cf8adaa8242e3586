// Package dbtest provides an in-memory database.Store for service tests.
package dbtest

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

type userGroupKey struct {
	userID  uuid.UUID
	groupID int32
}

type data struct {
	users      map[uuid.UUID]database.User
	groups     map[int32]database.Group
	courseInfo map[int32]database.CourseInfo
	userGroups map[userGroupKey]database.UserGroup
	problems   map[int32]database.Problem
	qnas       map[int32]database.CourseQna
	comments   map[int32]database.CourseQnaComment

	nextGroupID   int32
	nextProblemID int32
	nextQnaID     int32
	nextCommentID int32
}

// MemStore mimics the postgres store closely enough for the services: unique
// constraints on orders, cascading deletes and serialized transactions that
// roll back on error.
type MemStore struct {
	mu   sync.Mutex
	txMu sync.Mutex
	d    data

	failures map[string]error
}

func NewMemStore() *MemStore {
	return &MemStore{
		d: data{
			users:      make(map[uuid.UUID]database.User),
			groups:     make(map[int32]database.Group),
			courseInfo: make(map[int32]database.CourseInfo),
			userGroups: make(map[userGroupKey]database.UserGroup),
			problems:   make(map[int32]database.Problem),
			qnas:       make(map[int32]database.CourseQna),
			comments:   make(map[int32]database.CourseQnaComment),
		},
		failures: make(map[string]error),
	}
}

// FailOn makes every subsequent call of the named query return err.
func (s *MemStore) FailOn(query string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[query] = err
}

func (s *MemStore) failure(query string) error {
	return s.failures[query]
}

func (s *MemStore) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.d.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.d = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (d data) clone() data {
	c := data{
		users:         make(map[uuid.UUID]database.User, len(d.users)),
		groups:        make(map[int32]database.Group, len(d.groups)),
		courseInfo:    make(map[int32]database.CourseInfo, len(d.courseInfo)),
		userGroups:    make(map[userGroupKey]database.UserGroup, len(d.userGroups)),
		problems:      make(map[int32]database.Problem, len(d.problems)),
		qnas:          make(map[int32]database.CourseQna, len(d.qnas)),
		comments:      make(map[int32]database.CourseQnaComment, len(d.comments)),
		nextGroupID:   d.nextGroupID,
		nextProblemID: d.nextProblemID,
		nextQnaID:     d.nextQnaID,
		nextCommentID: d.nextCommentID,
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.groups {
		c.groups[k] = v
	}
	for k, v := range d.courseInfo {
		c.courseInfo[k] = v
	}
	for k, v := range d.userGroups {
		c.userGroups[k] = v
	}
	for k, v := range d.problems {
		c.problems[k] = v
	}
	for k, v := range d.qnas {
		v.ReadBy = slices.Clone(v.ReadBy)
		c.qnas[k] = v
	}
	for k, v := range d.comments {
		c.comments[k] = v
	}
	return c
}

// -- seeding --

func (s *MemStore) AddUser(userName string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.d.users[id] = database.User{
		ID:        id,
		UserName:  userName,
		Email:     userName + "@example.com",
		FirstName: userName,
		LastName:  userName,
		CreatedAt: time.Now().UTC(),
	}
	return id
}

func (s *MemStore) AddCourse(name string) int32 {
	id := s.AddGroup(name, database.GroupTypeCourse)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.courseInfo[id] = database.CourseInfo{
		GroupID:   id,
		CourseNum: "SWE3001",
		Professor: "prof",
		Semester:  "2025 Fall",
		Week:      16,
	}
	return id
}

// AddGroup adds a group without course info.
func (s *MemStore) AddGroup(name string, groupType database.GroupType) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.nextGroupID++
	id := s.d.nextGroupID
	s.d.groups[id] = database.Group{
		ID:        id,
		GroupName: name,
		GroupType: groupType,
		CreatedAt: time.Now().UTC(),
	}
	return id
}

func (s *MemStore) AddMember(userID uuid.UUID, groupID int32, isLeader bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.userGroups[userGroupKey{userID, groupID}] = database.UserGroup{
		UserID:        userID,
		GroupID:       groupID,
		IsGroupLeader: isLeader,
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *MemStore) AddProblem(title string, createdBy uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.nextProblemID++
	id := s.d.nextProblemID
	s.d.problems[id] = database.Problem{
		ID:         id,
		Title:      title,
		Difficulty: 1,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
	return id
}

// QnA returns the stored row as is, for assertions.
func (s *MemStore) QnA(groupID, order int32) (database.CourseQna, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.d.qnas {
		if q.GroupID == groupID && q.Order == order {
			q.ReadBy = slices.Clone(q.ReadBy)
			return q, true
		}
	}
	return database.CourseQna{}, false
}

// CommentCount counts stored comments of a qna.
func (s *MemStore) CommentCount(qnaID int32) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.d.comments {
		if c.CourseQnaID == qnaID {
			n++
		}
	}
	return n
}

// -- database.Querier --

func (s *MemStore) GetCourseById(ctx context.Context, id int32) (database.GetCourseByIdRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetCourseById"); err != nil {
		return database.GetCourseByIdRow{}, err
	}
	g, ok := s.d.groups[id]
	info, hasInfo := s.d.courseInfo[id]
	if !ok || !hasInfo {
		return database.GetCourseByIdRow{}, pgx.ErrNoRows
	}
	return database.GetCourseByIdRow{
		ID:        g.ID,
		GroupName: g.GroupName,
		CourseNum: info.CourseNum,
		ClassNum:  info.ClassNum,
		Professor: info.Professor,
		Semester:  info.Semester,
		Week:      info.Week,
	}, nil
}

func (s *MemStore) LockCourseById(ctx context.Context, id int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("LockCourseById"); err != nil {
		return 0, err
	}
	if _, ok := s.d.courseInfo[id]; !ok {
		return 0, pgx.ErrNoRows
	}
	return id, nil
}

func (s *MemStore) GetUserGroup(ctx context.Context, arg database.GetUserGroupParams) (database.UserGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetUserGroup"); err != nil {
		return database.UserGroup{}, err
	}
	ug, ok := s.d.userGroups[userGroupKey{arg.UserID, arg.GroupID}]
	if !ok {
		return database.UserGroup{}, pgx.ErrNoRows
	}
	return ug, nil
}

func (s *MemStore) GetCourseLeaders(ctx context.Context, groupID int32) ([]database.GetCourseLeadersRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetCourseLeaders"); err != nil {
		return nil, err
	}
	var rows []database.GetCourseLeadersRow
	for key, ug := range s.d.userGroups {
		if key.groupID != groupID || !ug.IsGroupLeader {
			continue
		}
		u := s.d.users[key.userID]
		rows = append(rows, database.GetCourseLeadersRow{
			UserID:    u.ID,
			UserName:  u.UserName,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UserName < rows[j].UserName })
	return rows, nil
}

func (s *MemStore) GetProblemById(ctx context.Context, id int32) (database.Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetProblemById"); err != nil {
		return database.Problem{}, err
	}
	p, ok := s.d.problems[id]
	if !ok {
		return database.Problem{}, pgx.ErrNoRows
	}
	return p, nil
}

func (s *MemStore) GetUserById(ctx context.Context, id uuid.UUID) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetUserById"); err != nil {
		return database.User{}, err
	}
	u, ok := s.d.users[id]
	if !ok {
		return database.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (s *MemStore) GetUserNamesByIds(ctx context.Context, ids []uuid.UUID) ([]database.GetUserNamesByIdsRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetUserNamesByIds"); err != nil {
		return nil, err
	}
	var rows []database.GetUserNamesByIdsRow
	for _, id := range ids {
		if u, ok := s.d.users[id]; ok {
			rows = append(rows, database.GetUserNamesByIdsRow{ID: u.ID, UserName: u.UserName})
		}
	}
	return rows, nil
}

func (s *MemStore) GetMaxCourseQnaOrder(ctx context.Context, groupID int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetMaxCourseQnaOrder"); err != nil {
		return 0, err
	}
	var max int32
	for _, q := range s.d.qnas {
		if q.GroupID == groupID && q.Order > max {
			max = q.Order
		}
	}
	return max, nil
}

func (s *MemStore) CreateCourseQna(ctx context.Context, arg database.CreateCourseQnaParams) (database.CourseQna, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateCourseQna"); err != nil {
		return database.CourseQna{}, err
	}
	for _, q := range s.d.qnas {
		if q.GroupID == arg.GroupID && q.Order == arg.Order {
			return database.CourseQna{}, &pgconn.PgError{
				Code:           agora_errors.CodeUniqueConstraint,
				ConstraintName: "uq_course_qnas_group_id_order",
				TableName:      "course_qnas",
			}
		}
	}
	if arg.ProblemID != nil {
		if _, ok := s.d.problems[*arg.ProblemID]; !ok {
			return database.CourseQna{}, &pgconn.PgError{
				Code:           agora_errors.CodeForeignKeyConstraint,
				ConstraintName: "fk_course_qnas_problem_id",
				TableName:      "course_qnas",
			}
		}
	}
	s.d.nextQnaID++
	now := time.Now().UTC()
	readBy := slices.Clone(arg.ReadBy)
	if readBy == nil {
		readBy = []uuid.UUID{}
	}
	q := database.CourseQna{
		ID:         s.d.nextQnaID,
		GroupID:    arg.GroupID,
		Order:      arg.Order,
		Title:      arg.Title,
		Content:    arg.Content,
		CreatedBy:  arg.CreatedBy,
		IsPrivate:  arg.IsPrivate,
		IsResolved: false,
		Category:   arg.Category,
		ProblemID:  arg.ProblemID,
		ReadBy:     readBy,
		CreateTime: now,
		UpdateTime: now,
	}
	s.d.qnas[q.ID] = q
	out := q
	out.ReadBy = slices.Clone(q.ReadBy)
	return out, nil
}

func (s *MemStore) GetCourseQnaByOrder(ctx context.Context, arg database.GetCourseQnaByOrderParams) (database.CourseQna, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetCourseQnaByOrder"); err != nil {
		return database.CourseQna{}, err
	}
	for _, q := range s.d.qnas {
		if q.GroupID == arg.GroupID && q.Order == arg.Order {
			q.ReadBy = slices.Clone(q.ReadBy)
			return q, nil
		}
	}
	return database.CourseQna{}, pgx.ErrNoRows
}

func (s *MemStore) LockCourseQnaById(ctx context.Context, id int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("LockCourseQnaById"); err != nil {
		return 0, err
	}
	if _, ok := s.d.qnas[id]; !ok {
		return 0, pgx.ErrNoRows
	}
	return id, nil
}

func (s *MemStore) ListCourseQnas(ctx context.Context, arg database.ListCourseQnasParams) ([]database.ListCourseQnasRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListCourseQnas"); err != nil {
		return nil, err
	}

	var rows []database.ListCourseQnasRow
	for _, q := range s.d.qnas {
		if q.GroupID != arg.GroupID {
			continue
		}
		if !arg.Unrestricted && q.IsPrivate &&
			!(arg.ViewerID.Valid && q.CreatedBy == arg.ViewerID.UUID) {
			continue
		}
		if arg.IsResolved != nil && q.IsResolved != *arg.IsResolved {
			continue
		}
		if arg.FilterCategories && !matchesCategory(q, arg) {
			continue
		}
		if arg.Search != nil && !ilikeContains(q.Title, *arg.Search) {
			continue
		}
		if arg.Cursor != nil && q.Order <= *arg.Cursor {
			continue
		}

		var count int32
		for _, c := range s.d.comments {
			if c.CourseQnaID == q.ID {
				count++
			}
		}
		rows = append(rows, database.ListCourseQnasRow{
			ID:           q.ID,
			GroupID:      q.GroupID,
			Order:        q.Order,
			Title:        q.Title,
			Content:      q.Content,
			CreatedBy:    q.CreatedBy,
			IsPrivate:    q.IsPrivate,
			IsResolved:   q.IsResolved,
			Category:     q.Category,
			ProblemID:    q.ProblemID,
			ReadBy:       slices.Clone(q.ReadBy),
			CreateTime:   q.CreateTime,
			UpdateTime:   q.UpdateTime,
			AuthorName:   s.d.users[q.CreatedBy].UserName,
			CommentCount: count,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Order < rows[j].Order })
	if arg.Take != nil && int(*arg.Take) < len(rows) {
		rows = rows[:*arg.Take]
	}
	return rows, nil
}

func matchesCategory(q database.CourseQna, arg database.ListCourseQnasParams) bool {
	if arg.IncludeGeneral && q.Category == database.CourseQnaCategoryGeneral {
		return true
	}
	if arg.IncludeProblem && q.Category == database.CourseQnaCategoryProblem {
		if len(arg.ProblemIds) == 0 {
			return true
		}
		return q.ProblemID != nil && slices.Contains(arg.ProblemIds, *q.ProblemID)
	}
	return false
}

// ilikeContains evaluates title ILIKE '%' || pattern || '%' ESCAPE '\'
// for patterns whose wildcards are all escaped.
func ilikeContains(title, pattern string) bool {
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(b.String()))
}

func (s *MemStore) UpdateCourseQna(ctx context.Context, arg database.UpdateCourseQnaParams) (database.CourseQna, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateCourseQna"); err != nil {
		return database.CourseQna{}, err
	}
	q, ok := s.d.qnas[arg.ID]
	if !ok {
		return database.CourseQna{}, pgx.ErrNoRows
	}
	if arg.Title != nil {
		q.Title = *arg.Title
	}
	if arg.Content != nil {
		q.Content = *arg.Content
	}
	if arg.IsPrivate != nil {
		q.IsPrivate = *arg.IsPrivate
	}
	q.UpdateTime = time.Now().UTC()
	s.d.qnas[q.ID] = q
	q.ReadBy = slices.Clone(q.ReadBy)
	return q, nil
}

func (s *MemStore) AddCourseQnaReader(ctx context.Context, arg database.AddCourseQnaReaderParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("AddCourseQnaReader"); err != nil {
		return err
	}
	q, ok := s.d.qnas[arg.ID]
	if !ok || slices.Contains(q.ReadBy, arg.UserID) {
		return nil
	}
	q.ReadBy = append(slices.Clone(q.ReadBy), arg.UserID)
	s.d.qnas[q.ID] = q
	return nil
}

func (s *MemStore) SetCourseQnaResolved(ctx context.Context, arg database.SetCourseQnaResolvedParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SetCourseQnaResolved"); err != nil {
		return err
	}
	q, ok := s.d.qnas[arg.ID]
	if !ok {
		return nil
	}
	q.IsResolved = arg.IsResolved
	s.d.qnas[q.ID] = q
	return nil
}

func (s *MemStore) MarkCourseQnaCommented(ctx context.Context, arg database.MarkCourseQnaCommentedParams) (database.CourseQna, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("MarkCourseQnaCommented"); err != nil {
		return database.CourseQna{}, err
	}
	q, ok := s.d.qnas[arg.ID]
	if !ok {
		return database.CourseQna{}, pgx.ErrNoRows
	}
	q.IsResolved = arg.IsResolved
	q.ReadBy = []uuid.UUID{arg.UserID}
	s.d.qnas[q.ID] = q
	q.ReadBy = slices.Clone(q.ReadBy)
	return q, nil
}

func (s *MemStore) DeleteCourseQna(ctx context.Context, id int32) (database.CourseQna, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteCourseQna"); err != nil {
		return database.CourseQna{}, err
	}
	q, ok := s.d.qnas[id]
	if !ok {
		return database.CourseQna{}, pgx.ErrNoRows
	}
	delete(s.d.qnas, id)
	for cid, c := range s.d.comments {
		if c.CourseQnaID == id {
			delete(s.d.comments, cid)
		}
	}
	return q, nil
}

func (s *MemStore) GetMaxCourseQnaCommentOrder(ctx context.Context, courseQnaID int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetMaxCourseQnaCommentOrder"); err != nil {
		return 0, err
	}
	var max int32
	for _, c := range s.d.comments {
		if c.CourseQnaID == courseQnaID && c.Order > max {
			max = c.Order
		}
	}
	return max, nil
}

func (s *MemStore) CreateCourseQnaComment(ctx context.Context, arg database.CreateCourseQnaCommentParams) (database.CourseQnaComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateCourseQnaComment"); err != nil {
		return database.CourseQnaComment{}, err
	}
	for _, c := range s.d.comments {
		if c.CourseQnaID == arg.CourseQnaID && c.Order == arg.Order {
			return database.CourseQnaComment{}, &pgconn.PgError{
				Code:           agora_errors.CodeUniqueConstraint,
				ConstraintName: "uq_course_qna_comments_qna_id_order",
				TableName:      "course_qna_comments",
			}
		}
	}
	s.d.nextCommentID++
	c := database.CourseQnaComment{
		ID:            s.d.nextCommentID,
		CourseQnaID:   arg.CourseQnaID,
		Order:         arg.Order,
		Content:       arg.Content,
		CreatedBy:     arg.CreatedBy,
		IsCourseStaff: arg.IsCourseStaff,
		CreateTime:    time.Now().UTC(),
	}
	s.d.comments[c.ID] = c
	return c, nil
}

func (s *MemStore) GetCourseQnaCommentByOrder(ctx context.Context, arg database.GetCourseQnaCommentByOrderParams) (database.CourseQnaComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetCourseQnaCommentByOrder"); err != nil {
		return database.CourseQnaComment{}, err
	}
	for _, c := range s.d.comments {
		if c.CourseQnaID == arg.CourseQnaID && c.Order == arg.Order {
			return c, nil
		}
	}
	return database.CourseQnaComment{}, pgx.ErrNoRows
}

func (s *MemStore) ListCourseQnaComments(ctx context.Context, courseQnaID int32) ([]database.ListCourseQnaCommentsRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListCourseQnaComments"); err != nil {
		return nil, err
	}
	var rows []database.ListCourseQnaCommentsRow
	for _, c := range s.d.comments {
		if c.CourseQnaID != courseQnaID {
			continue
		}
		rows = append(rows, database.ListCourseQnaCommentsRow{
			ID:            c.ID,
			CourseQnaID:   c.CourseQnaID,
			Order:         c.Order,
			Content:       c.Content,
			CreatedBy:     c.CreatedBy,
			IsCourseStaff: c.IsCourseStaff,
			CreateTime:    c.CreateTime,
			AuthorName:    s.d.users[c.CreatedBy].UserName,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Order < rows[j].Order })
	return rows, nil
}

func (s *MemStore) GetLatestCourseQnaComment(ctx context.Context, courseQnaID int32) (database.CourseQnaComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetLatestCourseQnaComment"); err != nil {
		return database.CourseQnaComment{}, err
	}
	var (
		latest database.CourseQnaComment
		found  bool
	)
	for _, c := range s.d.comments {
		if c.CourseQnaID == courseQnaID && (!found || c.Order > latest.Order) {
			latest = c
			found = true
		}
	}
	if !found {
		return database.CourseQnaComment{}, pgx.ErrNoRows
	}
	return latest, nil
}

func (s *MemStore) DeleteCourseQnaComment(ctx context.Context, id int32) (database.CourseQnaComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteCourseQnaComment"); err != nil {
		return database.CourseQnaComment{}, err
	}
	c, ok := s.d.comments[id]
	if !ok {
		return database.CourseQnaComment{}, pgx.ErrNoRows
	}
	delete(s.d.comments, id)
	return c, nil
}

var _ database.Store = (*MemStore)(nil)
