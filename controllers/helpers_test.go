package controllers

import (
	"net/http/httptest"
	"testing"

	"hotelflow/constants"
	"hotelflow/middleware"
	"hotelflow/services"

	"github.com/gin-gonic/gin"
)

// The history ledger records actor names straight from the token claim,
// so the identity AuthMiddleware stores must survive into the actor.
func TestStaffActorFromCarriesTokenIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := services.GenerateToken(services.UserInfo{
		UserId:  7,
		Name:    "Minh Tran",
		Role:    constants.RoleStaff,
		HotelID: 3,
	}, 60, true)
	if err != nil {
		t.Fatal(err)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/v1/rooms/1/status", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	middleware.AuthMiddleware()(c)
	if c.IsAborted() {
		t.Fatal("valid token rejected by auth middleware")
	}

	actor := staffActorFrom(c)
	if actor.ID != 7 {
		t.Errorf("actor id = %d, want 7", actor.ID)
	}
	if actor.Name != "Minh Tran" {
		t.Errorf("actor name = %q, want the token's display name", actor.Name)
	}
	if actor.Role != constants.RoleStaff {
		t.Errorf("actor role = %q, want %q", actor.Role, constants.RoleStaff)
	}
	if actor.Source != constants.SourceStaff {
		t.Errorf("actor source = %q, want %q", actor.Source, constants.SourceStaff)
	}
}
