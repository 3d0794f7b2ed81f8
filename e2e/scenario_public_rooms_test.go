package e2e

import (
	"context"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type testPublicRoomsSuite struct {
	BaseSuite
}

func TestPublicRoomsSuite(t *testing.T) {
	suite.Run(t, &testPublicRoomsSuite{})
}

type frame struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

func (s *testPublicRoomsSuite) TestServerIsServing() {
	s.WithHealth("Check recall_game serving status", func(ctx context.Context, client healthpb.HealthClient) {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "recall_game"})
		s.Require().NoError(err)
		s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.Status)
	})
}

func (s *testPublicRoomsSuite) TestListPublicRooms() {
	s.WithSession("Request public rooms", func(conn *websocket.Conn) {
		err := conn.WriteJSON(frame{Event: "get_public_rooms", Data: map[string]any{}})
		s.Require().NoError(err)

		var reply frame
		s.Require().NoError(conn.ReadJSON(&reply))
		s.Require().Equal("get_public_rooms_success", reply.Event)
		s.Require().Equal(true, reply.Data["success"])

		rooms, ok := reply.Data["data"].([]any)
		s.Require().True(ok)
		s.Require().EqualValues(len(rooms), reply.Data["count"])
		for _, r := range rooms {
			s.Require().Equal("public", r.(map[string]any)["permission"])
		}
	})
}

func (s *testPublicRoomsSuite) TestUnknownEventIsIgnored() {
	s.WithSession("Unknown event then public rooms", func(conn *websocket.Conn) {
		s.Require().NoError(conn.WriteJSON(frame{Event: "not_an_event", Data: map[string]any{}}))
		s.Require().NoError(conn.WriteJSON(frame{Event: "get_public_rooms", Data: map[string]any{}}))

		// Then the only reply is the room list
		var reply frame
		s.Require().NoError(conn.ReadJSON(&reply))
		s.Require().Equal("get_public_rooms_success", reply.Event)
	})
}
