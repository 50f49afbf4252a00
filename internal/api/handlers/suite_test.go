package handlers_test

import (
	"teampro-backend/internal/auth"
	"teampro-backend/internal/database/models"
	"teampro-backend/internal/service"
	"teampro-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// handlerSuite wires a router whose /api/v1 group runs as a fixed actor
type handlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	httpSuite *testutils.HTTPTestSuite
	actor     service.ActorContext
	v1        *gin.RouterGroup
}

func (s *handlerSuite) setup(role models.Role) {
	s.ctrl = gomock.NewController(s.T())
	s.httpSuite = testutils.SetupHTTPTest()
	s.actor = service.ActorContext{Role: role, ID: uuid.New(), Department: "CSE", Name: "Test " + string(role)}
	s.v1 = s.httpSuite.Router.Group("/api/v1")
	s.v1.Use(func(c *gin.Context) {
		auth.SetActor(c, s.actor)
		c.Next()
	})
}

func (s *handlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func result(message string) *service.Result {
	return &service.Result{Success: true, Message: message}
}
