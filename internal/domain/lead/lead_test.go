package lead_test

import (
	"testing"

	"github.com/lixantech/leadgate/internal/domain/lead"
	"github.com/smartystreets/goconvey/convey"
)

func TestParseInterest(t *testing.T) {
	convey.Convey("Given the closed interest set", t, func() {
		convey.Convey("Then known values parse to themselves", func() {
			for _, v := range []string{
				"landing_page", "website", "automation",
				"chatbot", "cms", "integration", "other",
			} {
				convey.So(lead.ParseInterest(v), convey.ShouldEqual, lead.Interest(v))
			}
		})

		convey.Convey("Then unknown values coerce to other", func() {
			convey.So(lead.ParseInterest("crypto"), convey.ShouldEqual, lead.InterestOther)
			convey.So(lead.ParseInterest(""), convey.ShouldEqual, lead.InterestOther)
			convey.So(lead.ParseInterest("LANDING_PAGE"), convey.ShouldEqual, lead.InterestOther)
		})
	})
}
