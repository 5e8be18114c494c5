package openai_test

import (
	"testing"
	"time"

	llm "github.com/lixantech/leadgate/internal/adapters/llm/openai"
	logging "github.com/lixantech/leadgate/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	convey.Convey("Given an OpenAI client", t, func() {
		_ = logging.Init()

		convey.Convey("When created without an API key", func() {
			client := llm.New("")

			convey.Convey("Then it should report unconfigured", func() {
				convey.So(client.Configured(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When created with an API key and defaults", func() {
			client := llm.New("sk-test")

			convey.Convey("Then it should report configured", func() {
				convey.So(client.Configured(), convey.ShouldBeTrue)
			})

			convey.Convey("Then it should carry the default model settings", func() {
				convey.So(client.Model(), convey.ShouldEqual, "gpt-4o-mini")
				convey.So(client.MaxTokens(), convey.ShouldEqual, 400)
			})
		})

		convey.Convey("When created with custom options", func() {
			client := llm.New("sk-test",
				llm.WithModel("gpt-4o"),
				llm.WithMaxTokens(800),
				llm.WithTimeout(5*time.Second),
			)

			convey.Convey("Then the options should be applied", func() {
				convey.So(client.Model(), convey.ShouldEqual, "gpt-4o")
				convey.So(client.MaxTokens(), convey.ShouldEqual, 800)
			})
		})

		convey.Convey("When options carry zero values", func() {
			client := llm.New("sk-test",
				llm.WithModel(""),
				llm.WithMaxTokens(0),
			)

			convey.Convey("Then defaults should be kept", func() {
				convey.So(client.Model(), convey.ShouldEqual, "gpt-4o-mini")
				convey.So(client.MaxTokens(), convey.ShouldEqual, 400)
			})
		})
	})
}
