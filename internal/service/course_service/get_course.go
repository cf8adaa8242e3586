package course_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tcp_snm/agora/internal/agora_errors"
	"github.com/tcp_snm/agora/internal/database"
)

func (c *CourseService) GetCourse(
	ctx context.Context,
	courseID int32,
) (Course, error) {
	return getCourse(ctx, c.DB, courseID)
}

func getCourse(
	ctx context.Context,
	q database.Querier,
	courseID int32,
) (Course, error) {
	dbCourse, err := q.GetCourseById(ctx, courseID)
	if err != nil {
		err = agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch course with id %v", courseID),
		)
		if errors.Is(err, agora_errors.ErrNotFound) {
			return Course{}, agora_errors.EntityNotFound("Course")
		}
		return Course{}, err
	}

	return Course{
		ID:        dbCourse.ID,
		Name:      dbCourse.GroupName,
		CourseNum: dbCourse.CourseNum,
		ClassNum:  dbCourse.ClassNum,
		Professor: dbCourse.Professor,
		Semester:  dbCourse.Semester,
		Week:      dbCourse.Week,
	}, nil
}

func (c *CourseService) GetCourseLeaders(
	ctx context.Context,
	courseID int32,
) ([]Member, error) {
	if _, err := c.GetCourse(ctx, courseID); err != nil {
		return nil, err
	}

	rows, err := c.DB.GetCourseLeaders(ctx, courseID)
	if err != nil {
		return nil, agora_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot fetch leaders of course %v", courseID),
		)
	}

	leaders := make([]Member, 0, len(rows))
	for _, row := range rows {
		leaders = append(leaders, Member{
			UserID:    row.UserID,
			UserName:  row.UserName,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return leaders, nil
}
