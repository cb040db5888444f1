package relay

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(hub *Hub, userID, companyID, role string) *Client {
	return NewClient(hub, nil, userID, companyID, role)
}

func receiveOrTimeout(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case payload := <-c.send:
		var msg Message
		assert.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("expected a delivery")
		return Message{}
	}
}

func assertNoDelivery(t *testing.T, c *Client) {
	t.Helper()
	select {
	case <-c.send:
		t.Fatal("unexpected delivery")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClientWants(t *testing.T) {
	hub := NewHub()
	employeeClient := testClient(hub, "u-1", "c-1", "EMPLOYEE")
	adminClient := testClient(hub, "u-2", "c-1", "ADMIN")
	otherCompany := testClient(hub, "u-1", "c-2", "EMPLOYEE")

	directMsg := Message{CompanyID: "c-1", UserID: "u-1", Audience: "employee"}
	assert.True(t, employeeClient.wants(directMsg))
	assert.False(t, adminClient.wants(directMsg))
	assert.False(t, otherCompany.wants(directMsg))

	adminMsg := Message{CompanyID: "c-1", UserID: "u-9", Audience: "admin"}
	assert.False(t, employeeClient.wants(adminMsg))
	assert.True(t, adminClient.wants(adminMsg))
}

func TestHubDeliversToMatchingClient(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	target := testClient(hub, "u-1", "c-1", "EMPLOYEE")
	bystander := testClient(hub, "u-2", "c-1", "EMPLOYEE")
	hub.Register(target)
	hub.Register(bystander)

	hub.Broadcast(Message{
		CompanyID: "c-1",
		UserID:    "u-1",
		Audience:  "employee",
		Type:      "salary_corrected",
		Title:     "Salary corrected",
	})

	msg := receiveOrTimeout(t, target)
	assert.Equal(t, "salary_corrected", msg.Type)
	assertNoDelivery(t, bystander)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	slow := testClient(hub, "u-1", "c-1", "EMPLOYEE")
	hub.Register(slow)

	// penuhi buffer tanpa pembaca
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Broadcast(Message{CompanyID: "c-1", UserID: "u-1", Audience: "employee"})
	}

	// klien lambat akhirnya dilepas: kanal send ditutup oleh hub
	assert.Eventually(t, func() bool {
		for {
			select {
			case _, ok := <-slow.send:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, 2*time.Second, 10*time.Millisecond)
}
