package qna_service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/email"
)

// notifyAnswered mails the author of qna about a staff answer. Failures are
// logged and never reach the caller.
func (q *QnAService) notifyAnswered(
	ctx context.Context,
	qna database.CourseQna,
	comment Comment,
) {
	if q.Mailer == nil || q.UserServiceConfig == nil {
		return
	}

	author, err := q.UserServiceConfig.GetUserByID(ctx, qna.CreatedBy)
	if err != nil {
		log.Warnf("cannot notify author of qna %v, %v", qna.ID, err)
		return
	}

	err = q.Mailer.Send(ctx, email.EmailRequest{
		To:      []string{author.Email},
		Subject: fmt.Sprintf("Your question \"%s\" has been answered", qna.Title),
		Body: fmt.Sprintf(
			"Hi %s,\n\ncourse staff answered your question #%d \"%s\":\n\n%s\n",
			author.UserName,
			qna.Order,
			qna.Title,
			comment.Content,
		),
		BodyType: email.KeyEmailBodyPlain,
		Purpose:  email.PurposeQnAAnswered,
	})
	if err != nil {
		log.Warnf("cannot notify %s about answer on qna %v, %v", author.UserName, qna.ID, err)
	}
}
