// Package grpc adapts the trade-command interpreter to the TradeDeskService
// wire contract. It owns no business rules: requests are translated into
// lifecycle calls and domain results back into proto messages.
package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	tradedeskv1 "github.com/ruimtorres/tradedesk-backend/internal/adapter/grpc/tradedesk/v1"
	"github.com/ruimtorres/tradedesk-backend/internal/usecase/interpreter"
)

// Server implements the TradeDeskService gRPC server
type Server struct {
	tradedeskv1.UnimplementedTradeDeskServiceServer

	Interpreter *interpreter.Service
	Gate        *interpreter.DecisionGate
}

// NewServer creates a new gRPC server instance
func NewServer(svc *interpreter.Service, gate *interpreter.DecisionGate) *Server {
	return &Server{
		Interpreter: svc,
		Gate:        gate,
	}
}

// ParseCommand handles the ParseCommand RPC. Input that matches no grammar
// pattern is not an error: the response carries matched = false so the
// caller can route the utterance elsewhere.
func (s *Server) ParseCommand(ctx context.Context, req *tradedeskv1.ParseCommandRequest) (*tradedeskv1.ParseCommandResponse, error) {
	if req.Text == "" {
		return nil, status.Error(codes.InvalidArgument, "text cannot be empty")
	}

	cmd, err := s.Interpreter.Interpret(ctx, req.Text)
	if interpreter.IsNoMatch(err) {
		return &tradedeskv1.ParseCommandResponse{Matched: false}, nil
	}
	if err != nil {
		return nil, mapError(err)
	}

	return &tradedeskv1.ParseCommandResponse{
		Matched: true,
		Command: commandToProto(cmd),
	}, nil
}

// ConfirmCommand handles the ConfirmCommand RPC. It resolves the pending
// confirmation wait; approve = false cancels the command.
func (s *Server) ConfirmCommand(ctx context.Context, req *tradedeskv1.ConfirmCommandRequest) (*tradedeskv1.ConfirmCommandResponse, error) {
	id, err := uuid.Parse(req.CommandId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid command_id format: %v", err)
	}

	if err := s.Gate.Resolve(id, req.Approve); err != nil {
		return nil, status.Error(codes.FailedPrecondition, "command is not awaiting confirmation")
	}

	// The decision settles asynchronously; return the current ledger view.
	cmd, err := s.Interpreter.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &tradedeskv1.ConfirmCommandResponse{Command: commandToProto(cmd)}, nil
}

// CancelCommand handles the CancelCommand RPC
func (s *Server) CancelCommand(ctx context.Context, req *tradedeskv1.CancelCommandRequest) (*tradedeskv1.CancelCommandResponse, error) {
	id, err := uuid.Parse(req.CommandId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid command_id format: %v", err)
	}

	if err := s.Interpreter.Cancel(ctx, id); err != nil {
		return nil, mapError(err)
	}

	cmd, err := s.Interpreter.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &tradedeskv1.CancelCommandResponse{Command: commandToProto(cmd)}, nil
}

// GetCommand handles the GetCommand RPC
func (s *Server) GetCommand(ctx context.Context, req *tradedeskv1.GetCommandRequest) (*tradedeskv1.GetCommandResponse, error) {
	id, err := uuid.Parse(req.CommandId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid command_id format: %v", err)
	}

	cmd, err := s.Interpreter.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &tradedeskv1.GetCommandResponse{Command: commandToProto(cmd)}, nil
}

// ListHistory handles the ListHistory RPC
func (s *Server) ListHistory(ctx context.Context, req *tradedeskv1.ListHistoryRequest) (*tradedeskv1.ListHistoryResponse, error) {
	commands, err := s.Interpreter.History(ctx, int(req.Limit))
	if err != nil {
		return nil, mapError(err)
	}

	resp := &tradedeskv1.ListHistoryResponse{
		Commands: make([]*tradedeskv1.TradeCommand, 0, len(commands)),
	}
	for _, cmd := range commands {
		resp.Commands = append(resp.Commands, commandToProto(cmd))
	}
	return resp, nil
}
