package resend_test

import (
	"context"
	"testing"

	"github.com/lixantech/leadgate/internal/adapters/email/resend"
	"github.com/lixantech/leadgate/internal/domain/lead"
	logging "github.com/lixantech/leadgate/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestNotifier_Configured(t *testing.T) {
	convey.Convey("Given a Resend notifier", t, func() {
		_ = logging.Init()

		convey.Convey("When credentials are missing", func() {
			convey.So(resend.New("", "").Configured(), convey.ShouldBeFalse)
			convey.So(resend.New("re_test", "").Configured(), convey.ShouldBeFalse)
			convey.So(resend.New("", "leads@example.com").Configured(), convey.ShouldBeFalse)
		})

		convey.Convey("When credentials are present", func() {
			convey.So(resend.New("re_test", "leads@example.com").Configured(), convey.ShouldBeTrue)
		})

		convey.Convey("When sending while unconfigured", func() {
			err := resend.New("", "").Send(context.Background(), lead.Notification{
				Name:  "Laura",
				Email: "laura@example.com",
			})

			convey.Convey("Then it should fail with ErrNotConfigured", func() {
				convey.So(err, convey.ShouldEqual, resend.ErrNotConfigured)
			})
		})
	})
}

func TestSubject(t *testing.T) {
	convey.Convey("Given a notification", t, func() {
		convey.Convey("When no company is set", func() {
			subject := resend.Subject(lead.Notification{Name: "Laura Gómez"})
			convey.So(subject, convey.ShouldEqual, "New lead from Laura Gómez")
		})

		convey.Convey("When a company is set", func() {
			subject := resend.Subject(lead.Notification{Name: "Laura Gómez", Company: "Gómez SL"})
			convey.So(subject, convey.ShouldEqual, "New lead from Laura Gómez · Gómez SL")
		})
	})
}
