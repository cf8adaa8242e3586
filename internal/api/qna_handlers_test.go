package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/api"
	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/course_service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
)

const testSecret = "handler-test-secret"

func bearer(userID uuid.UUID) string {
	claims := service.UserCredentialClaims{
		UserID:   userID,
		UserName: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	Expect(err).NotTo(HaveOccurred())
	return "Bearer " + token
}

var _ = Describe("QnA handlers", func() {
	var (
		router  *chi.Mux
		qnaSvc  *mockQnAService
		courses *mockCourseService
		userID  uuid.UUID
	)

	serve := func(method, path string, body any, user *uuid.UUID) *httptest.ResponseRecorder {
		var buf *bytes.Buffer
		switch b := body.(type) {
		case nil:
			buf = &bytes.Buffer{}
		case string:
			buf = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			Expect(err).NotTo(HaveOccurred())
			buf = bytes.NewBuffer(raw)
		}
		req := httptest.NewRequest(method, path, buf)
		req.Header.Set("Content-Type", "application/json")
		if user != nil {
			req.Header.Set("Authorization", bearer(*user))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		os.Setenv(service.KeyJWTSecret, testSecret)
		DeferCleanup(os.Unsetenv, service.KeyJWTSecret)

		qnaSvc = &mockQnAService{}
		courses = &mockCourseService{}
		userID = uuid.New()
		router = api.NewV1Router(&api.Api{
			QnAServiceConfig:    qnaSvc,
			CourseServiceConfig: courses,
		})
	})

	Describe("POST /course/{id}/qna", func() {
		It("creates a qna for the signed in user", func() {
			var (
				gotUser    uuid.UUID
				gotCourse  int32
				gotReq     qna_service.CreateQnARequest
				gotProblem *int32
			)
			qnaSvc.createQnAFn = func(_ context.Context, u uuid.UUID, c int32, req qna_service.CreateQnARequest, p *int32) (qna_service.QnA, error) {
				gotUser, gotCourse, gotReq, gotProblem = u, c, req, p
				return qna_service.QnA{CourseID: c, Order: 1, Title: req.Title, ReadBy: []uuid.UUID{u}}, nil
			}

			w := serve(http.MethodPost, "/course/7/qna?problemId=5", map[string]any{
				"title":      "Q1",
				"content":    "body",
				"is_private": true,
			}, &userID)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(gotUser).To(Equal(userID))
			Expect(gotCourse).To(Equal(int32(7)))
			Expect(gotReq.Title).To(Equal("Q1"))
			Expect(gotReq.IsPrivate).NotTo(BeNil())
			Expect(*gotReq.IsPrivate).To(BeTrue())
			Expect(gotProblem).NotTo(BeNil())
			Expect(*gotProblem).To(Equal(int32(5)))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["order"]).To(BeEquivalentTo(1))
		})

		It("requires authentication", func() {
			w := serve(http.MethodPost, "/course/7/qna", map[string]any{"title": "Q", "content": "c"}, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects malformed bodies", func() {
			w := serve(http.MethodPost, "/course/7/qna", `{"title":`, &userID)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects unknown fields", func() {
			w := serve(http.MethodPost, "/course/7/qna", `{"title":"Q","content":"c","pinned":true}`, &userID)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("rejects invalid path and query values",
			func(path string) {
				called := false
				qnaSvc.createQnAFn = func(context.Context, uuid.UUID, int32, qna_service.CreateQnARequest, *int32) (qna_service.QnA, error) {
					called = true
					return qna_service.QnA{}, nil
				}
				w := serve(http.MethodPost, path, map[string]any{"title": "Q", "content": "c"}, &userID)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(called).To(BeFalse())
			},
			Entry("zero course id", "/course/0/qna"),
			Entry("negative course id", "/course/-3/qna"),
			Entry("non numeric course id", "/course/abc/qna"),
			Entry("course id overflow", "/course/99999999999/qna"),
			Entry("zero problem id", "/course/1/qna?problemId=0"),
			Entry("non numeric problem id", "/course/1/qna?problemId=x"),
		)

		DescribeTable("maps service errors to status codes",
			func(err error, status int) {
				qnaSvc.createQnAFn = func(context.Context, uuid.UUID, int32, qna_service.CreateQnARequest, *int32) (qna_service.QnA, error) {
					return qna_service.QnA{}, err
				}
				w := serve(http.MethodPost, "/course/1/qna", map[string]any{"title": "Q", "content": "c"}, &userID)
				Expect(w.Code).To(Equal(status))
			},
			Entry("course missing", agora_errors.EntityNotFound("Course"), http.StatusNotFound),
			Entry("not a member", agora_errors.ForbiddenAccess("not a member"), http.StatusForbidden),
			Entry("invalid input", fmt.Errorf("%w, title is required", agora_errors.ErrInvalidInput), http.StatusBadRequest),
			Entry("order conflict", fmt.Errorf("%w, order taken", agora_errors.ErrEntityAlreadyExist), http.StatusConflict),
			Entry("unexpected", errors.New("boom"), http.StatusInternalServerError),
		)

		It("does not leak internal error details", func() {
			qnaSvc.createQnAFn = func(context.Context, uuid.UUID, int32, qna_service.CreateQnARequest, *int32) (qna_service.QnA, error) {
				return qna_service.QnA{}, fmt.Errorf("%w, pq: password authentication failed", agora_errors.ErrInternal)
			}
			w := serve(http.MethodPost, "/course/1/qna", map[string]any{"title": "Q", "content": "c"}, &userID)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
		})
	})

	Describe("GET /course/{id}/qna", func() {
		It("parses the filter from the query string", func() {
			var (
				gotUser   *uuid.UUID
				gotFilter qna_service.QnAFilter
			)
			qnaSvc.getQnAsFn = func(_ context.Context, u *uuid.UUID, _ int32, f qna_service.QnAFilter) ([]qna_service.QnASummary, error) {
				gotUser, gotFilter = u, f
				return []qna_service.QnASummary{{Order: 1, IsRead: true}}, nil
			}

			w := serve(
				http.MethodGet,
				"/course/3/qna?week=2&categories=General,Problem&problemIds=5,6&isAnswered=true&search=tle&cursor=0&take=10",
				nil,
				&userID,
			)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotUser).NotTo(BeNil())
			Expect(*gotUser).To(Equal(userID))
			Expect(*gotFilter.Week).To(Equal(int32(2)))
			Expect(gotFilter.Categories).To(Equal([]qna_service.Category{qna_service.CategoryGeneral, qna_service.CategoryProblem}))
			Expect(gotFilter.ProblemIDs).To(Equal([]int32{5, 6}))
			Expect(*gotFilter.IsAnswered).To(BeTrue())
			Expect(*gotFilter.Search).To(Equal("tle"))
			Expect(*gotFilter.Cursor).To(Equal(int32(0)))
			Expect(*gotFilter.Take).To(Equal(int32(10)))

			var resp []map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0]).NotTo(HaveKey("read_by"))
			Expect(resp[0]["is_read"]).To(BeTrue())
		})

		It("serves anonymous users", func() {
			var gotUser *uuid.UUID
			called := false
			qnaSvc.getQnAsFn = func(_ context.Context, u *uuid.UUID, _ int32, f qna_service.QnAFilter) ([]qna_service.QnASummary, error) {
				called = true
				gotUser = u
				Expect(f).To(Equal(qna_service.QnAFilter{}))
				return []qna_service.QnASummary{}, nil
			}

			w := serve(http.MethodGet, "/course/3/qna", nil, nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
			Expect(gotUser).To(BeNil())
			Expect(w.Body.String()).To(Equal("[]"))
		})

		DescribeTable("rejects malformed filters",
			func(query string) {
				w := serve(http.MethodGet, "/course/3/qna?"+query, nil, nil)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("isAnswered", "isAnswered=yes"),
			Entry("problemIds", "problemIds=1,x"),
			Entry("negative problem id", "problemIds=-2"),
			Entry("take", "take=0"),
			Entry("cursor", "cursor=-1"),
			Entry("week", "week=abc"),
		)
	})

	Describe("GET /course/{id}/qna/{order}", func() {
		It("returns the detail", func() {
			qnaSvc.getQnAFn = func(_ context.Context, u *uuid.UUID, c int32, o int32) (qna_service.QnADetail, error) {
				Expect(c).To(Equal(int32(3)))
				Expect(o).To(Equal(int32(2)))
				return qna_service.QnADetail{
					QnA:      qna_service.QnA{CourseID: c, Order: o, Title: "Q2"},
					Comments: []qna_service.Comment{{Order: 1, Content: "hi"}},
				}, nil
			}

			w := serve(http.MethodGet, "/course/3/qna/2", nil, &userID)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["title"]).To(Equal("Q2"))
			Expect(resp["comments"]).To(HaveLen(1))
		})

		It("returns 403 for private entries", func() {
			qnaSvc.getQnAFn = func(context.Context, *uuid.UUID, int32, int32) (qna_service.QnADetail, error) {
				return qna_service.QnADetail{}, agora_errors.ForbiddenAccess("This is a private question")
			}
			w := serve(http.MethodGet, "/course/3/qna/2", nil, nil)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(w.Body.String()).To(ContainSubstring("private question"))
		})

		It("returns 400 for a non positive order", func() {
			w := serve(http.MethodGet, "/course/3/qna/0", nil, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PATCH /course/{id}/qna/{order}", func() {
		It("passes only the provided fields", func() {
			var got qna_service.UpdateQnARequest
			qnaSvc.updateQnAFn = func(_ context.Context, u uuid.UUID, _ int32, _ int32, req qna_service.UpdateQnARequest) (qna_service.QnA, error) {
				Expect(u).To(Equal(userID))
				got = req
				return qna_service.QnA{Title: *req.Title}, nil
			}

			w := serve(http.MethodPatch, "/course/3/qna/1", map[string]any{"title": "new"}, &userID)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(*got.Title).To(Equal("new"))
			Expect(got.Content).To(BeNil())
			Expect(got.IsPrivate).To(BeNil())
		})

		It("requires authentication", func() {
			w := serve(http.MethodPatch, "/course/3/qna/1", map[string]any{"title": "new"}, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("DELETE /course/{id}/qna/{order}", func() {
		It("returns the deleted entry", func() {
			qnaSvc.deleteQnAFn = func(_ context.Context, _ uuid.UUID, c int32, o int32) (qna_service.QnA, error) {
				return qna_service.QnA{CourseID: c, Order: o}, nil
			}
			w := serve(http.MethodDelete, "/course/3/qna/4", nil, &userID)
			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["order"]).To(BeEquivalentTo(4))
		})

		It("returns 404 when the entry is missing", func() {
			qnaSvc.deleteQnAFn = func(context.Context, uuid.UUID, int32, int32) (qna_service.QnA, error) {
				return qna_service.QnA{}, agora_errors.EntityNotFound("CourseQnA")
			}
			w := serve(http.MethodDelete, "/course/3/qna/4", nil, &userID)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("comments", func() {
		It("creates a comment", func() {
			qnaSvc.createCommentFn = func(_ context.Context, u uuid.UUID, c int32, o int32, req qna_service.CreateCommentRequest) (qna_service.Comment, error) {
				Expect(o).To(Equal(int32(2)))
				return qna_service.Comment{QnAOrder: o, Order: 1, Content: req.Content, CreatedBy: u, IsCourseStaff: true}, nil
			}

			w := serve(http.MethodPost, "/course/3/qna/2/comment", map[string]any{"content": "answer"}, &userID)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["content"]).To(Equal("answer"))
			Expect(resp["is_course_staff"]).To(BeTrue())
		})

		It("deletes a comment", func() {
			qnaSvc.deleteCommentFn = func(_ context.Context, _ uuid.UUID, c int32, q int32, o int32) (qna_service.Comment, error) {
				Expect([]int32{c, q, o}).To(Equal([]int32{3, 2, 5}))
				return qna_service.Comment{QnAOrder: q, Order: o}, nil
			}

			w := serve(http.MethodDelete, "/course/3/qna/2/comment/5", nil, &userID)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("rejects anonymous comments", func() {
			w := serve(http.MethodPost, "/course/3/qna/2/comment", map[string]any{"content": "answer"}, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a non positive comment order", func() {
			w := serve(http.MethodDelete, "/course/3/qna/2/comment/0", nil, &userID)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /course/{id}/leaders", func() {
		It("lists the leaders", func() {
			courses.getCourseLeadersFn = func(_ context.Context, c int32) ([]course_service.Member, error) {
				return []course_service.Member{{UserID: userID, UserName: "prof"}}, nil
			}
			w := serve(http.MethodGet, "/course/3/leaders", nil, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"user_name":"prof"`))
		})
	})

	It("answers health checks", func() {
		w := serve(http.MethodGet, "/healthz", nil, nil)
		Expect(w.Code).To(Equal(http.StatusOK))
	})
})
