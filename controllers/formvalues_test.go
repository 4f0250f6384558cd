package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormID(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{`7`, 7},
		{`"7"`, 7},
		{`" 12 "`, 12},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id formID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id.value())
		})
	}

	for _, bad := range []string{`"abc"`, `-1`, `"1.5"`, `true`} {
		var id formID
		assert.Error(t, json.Unmarshal([]byte(bad), &id), bad)
	}
}

func TestFormAmount(t *testing.T) {
	var req updateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"room_id":"3","customer_id":1,"total_amount":"450.50"}`), &req))
	assert.Equal(t, uint(3), req.RoomID.value())
	assert.Equal(t, uint(1), req.CustomerID.value())
	require.NotNil(t, req.TotalAmount.ptr())
	assert.Equal(t, 450.5, *req.TotalAmount.ptr())

	for _, body := range []string{`{}`, `{"total_amount":null}`, `{"total_amount":""}`} {
		var r updateBookingRequest
		require.NoError(t, json.Unmarshal([]byte(body), &r))
		assert.Nil(t, r.TotalAmount.ptr(), body)
	}

	var svc attachServiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"booking_id":"9","service_name":"Spa","service_cost":0}`), &svc))
	require.NotNil(t, svc.ServiceCost.ptr())
	assert.Zero(t, *svc.ServiceCost.ptr())

	assert.Error(t, json.Unmarshal([]byte(`{"service_cost":"ten"}`), &svc))
}
