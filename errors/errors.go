package errors

import "fmt"

var (
	ErrWorkerPanic             = fmt.Errorf("worker panic")
	ErrInitialization          = fmt.Errorf("initialization failed")
	ErrGatewayUnavailable      = fmt.Errorf("messaging gateway not available")
	ErrValidation              = fmt.Errorf("validation failed")
	ErrCollaboratorUnavailable = fmt.Errorf("collaborator not available")
	ErrUnexpectedFault         = fmt.Errorf("unexpected fault")
	ErrRoomNotFound            = fmt.Errorf("room not found")
	ErrInvalidRoom             = fmt.Errorf("invalid room")
	ErrSessionNotFound         = fmt.Errorf("session not found")
	ErrSessionClosed           = fmt.Errorf("session closed")
	ErrDeliveryTimeout         = fmt.Errorf("delivery timeout")
)
