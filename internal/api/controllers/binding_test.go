package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Malformed JSON must get the same status on every write endpoint.
func TestMalformedBodyRespondsUnprocessable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	account := NewAccountController(nil)
	item := NewItemController(nil)
	order := NewOrderController(nil)

	r := gin.New()
	r.POST("/user/register", account.Register)
	r.POST("/user/login", account.Login)
	r.PUT("/user/:id", account.UpdateUser)
	r.POST("/item", item.CreateItem)
	r.PUT("/item/:id", item.UpdateItem)
	r.POST("/order/update-choice", order.UpdateChoice)
	r.POST("/order/schedule-month", order.ScheduleMonth)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/user/register"},
		{http.MethodPost, "/user/login"},
		{http.MethodPut, "/user/1"},
		{http.MethodPost, "/item"},
		{http.MethodPut, "/item/1"},
		{http.MethodPost, "/order/update-choice"},
		{http.MethodPost, "/order/schedule-month"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "%s %s", tc.method, tc.path)
	}
}
