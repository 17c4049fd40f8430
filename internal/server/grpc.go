package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"DexLedger/internal/asset"
	"DexLedger/internal/book"
	"DexLedger/internal/core"
	"DexLedger/internal/observability"
	"DexLedger/internal/persistence"
	"DexLedger/internal/projection"
	"DexLedger/internal/query"

	"github.com/ethereum/go-ethereum/common"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	adminv1 "DexLedger/gen/go/dexledger/admin/v1"
	opsv1 "DexLedger/gen/go/dexledger/ops/v1"
	queryv1 "DexLedger/gen/go/dexledger/query/v1"
)

// GRPCServer wraps the gRPC server and the gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
	log           zerolog.Logger
}

// Deps holds everything the gRPC services need.
type Deps struct {
	Engine        *core.Exchange
	Query         *query.Service
	SnapshotMgr   *persistence.SnapshotManager
	Projection    *projection.Worker
	EventReader   *persistence.EventLogWriter
	HealthChecker *observability.HealthChecker
	StartTime     time.Time
}

// NewGRPCServer registers all services on a fresh gRPC server.
func NewGRPCServer(grpcAddr, httpAddr string, deps *Deps) *GRPCServer {
	grpcServer := grpc.NewServer()

	opsv1.RegisterOpsServiceServer(grpcServer, &opsServiceImpl{engine: deps.Engine})
	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{svc: deps.Query})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		engine:      deps.Engine,
		snapMgr:     deps.SnapshotMgr,
		projection:  deps.Projection,
		eventReader: deps.EventReader,
		health:      deps.HealthChecker,
		startTime:   deps.StartTime,
	})

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
		log:           observability.NewLogger("server"),
	}
}

// StartGRPC serves gRPC until ctx is cancelled. Blocking.
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("gRPC server shutting down")
		s.grpcServer.GracefulStop()
	}()

	s.log.Info().Str("addr", s.grpcAddr).Msg("gRPC server listening")
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway serves the HTTP/JSON reverse proxy plus the health and
// metrics endpoints. Blocking.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := opsv1.RegisterOpsServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ops gateway: %w", err)
	}
	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	}
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("HTTP gateway shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info().Str("addr", s.httpAddr).Msg("HTTP gateway listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// parseAddress validates and decodes a hex address field.
func parseAddress(field, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, status.Errorf(codes.InvalidArgument, "%s is not a hex address: %q", field, value)
	}
	return common.HexToAddress(value), nil
}

// mapEngineError converts engine sentinels into gRPC status codes.
func mapEngineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, asset.ErrUnknownAsset), errors.Is(err, book.ErrUnknownOrder):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, asset.ErrAlreadyRegistered):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, asset.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidOrder),
		errors.Is(err, core.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrInsufficientFunds), errors.Is(err, core.ErrExpired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, core.ErrTransferFailed):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

type opsServiceImpl struct {
	opsv1.UnimplementedOpsServiceServer
	engine *core.Exchange
}

func (s *opsServiceImpl) Deposit(ctx context.Context, req *opsv1.DepositRequest) (*opsv1.DepositResponse, error) {
	user, err := parseAddress("user", req.User)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Deposit(ctx, user, asset.ID(req.AssetId), req.Amount); err != nil {
		return nil, mapEngineError(err)
	}

	available, locked := s.engine.BalanceOf(user, asset.ID(req.AssetId))
	return &opsv1.DepositResponse{Available: available, Locked: locked}, nil
}

func (s *opsServiceImpl) Withdraw(ctx context.Context, req *opsv1.WithdrawRequest) (*opsv1.WithdrawResponse, error) {
	user, err := parseAddress("user", req.User)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Withdraw(ctx, user, asset.ID(req.AssetId), req.Amount); err != nil {
		return nil, mapEngineError(err)
	}

	available, locked := s.engine.BalanceOf(user, asset.ID(req.AssetId))
	return &opsv1.WithdrawResponse{Available: available, Locked: locked}, nil
}

func (s *opsServiceImpl) PlaceOrder(ctx context.Context, req *opsv1.PlaceOrderRequest) (*opsv1.PlaceOrderResponse, error) {
	maker, err := parseAddress("maker", req.Maker)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		t := req.ExpiresAt.AsTime()
		expiresAt = &t
	}

	id, err := s.engine.PlaceOrder(ctx, maker,
		asset.ID(req.HaveAsset), req.HaveAmount,
		asset.ID(req.WantAsset), req.WantAmount,
		req.Attached, expiresAt)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &opsv1.PlaceOrderResponse{OrderId: uint64(id)}, nil
}

func (s *opsServiceImpl) CancelOrder(ctx context.Context, req *opsv1.CancelOrderRequest) (*opsv1.CancelOrderResponse, error) {
	caller, err := parseAddress("caller", req.Caller)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.engine.CancelOrder(ctx, caller, book.OrderID(req.OrderId))
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &opsv1.CancelOrderResponse{Unlocked: unlocked}, nil
}

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	svc *query.Service
}

func orderToProto(o *book.Order, status string) *queryv1.Order {
	pb := &queryv1.Order{
		OrderId:    uint64(o.ID),
		Maker:      o.Maker.Hex(),
		HaveAsset:  uint32(o.HaveAsset),
		HaveAmount: o.HaveAmount,
		WantAsset:  uint32(o.WantAsset),
		WantAmount: o.WantAmount,
		FillAmount: o.FillAmount,
		CreatedAt:  timestamppb.New(o.CreatedAt),
		Status:     status,
	}
	if o.ExpiresAt != nil {
		pb.ExpiresAt = timestamppb.New(*o.ExpiresAt)
	}
	return pb
}

func (s *queryServiceImpl) GetBalance(ctx context.Context, req *queryv1.GetBalanceRequest) (*queryv1.GetBalanceResponse, error) {
	user, err := parseAddress("user", req.User)
	if err != nil {
		return nil, err
	}

	bal := s.svc.Balance(user, asset.ID(req.AssetId))
	return &queryv1.GetBalanceResponse{Available: bal.Available, Locked: bal.Locked}, nil
}

func (s *queryServiceImpl) GetOrder(ctx context.Context, req *queryv1.GetOrderRequest) (*queryv1.GetOrderResponse, error) {
	o, err := s.svc.Order(book.OrderID(req.OrderId))
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &queryv1.GetOrderResponse{Order: orderToProto(o, "open")}, nil
}

func (s *queryServiceImpl) ListOpenOrders(ctx context.Context, req *queryv1.ListOpenOrdersRequest) (*queryv1.ListOpenOrdersResponse, error) {
	open := s.svc.OpenOrders()
	orders := make([]*queryv1.Order, 0, len(open))
	for _, o := range open {
		orders = append(orders, orderToProto(o, "open"))
	}
	return &queryv1.ListOpenOrdersResponse{Orders: orders}, nil
}

func (s *queryServiceImpl) ListUserOrders(ctx context.Context, req *queryv1.ListUserOrdersRequest) (*queryv1.ListUserOrdersResponse, error) {
	maker, err := parseAddress("maker", req.Maker)
	if err != nil {
		return nil, err
	}
	if req.Status != "" && req.Status != "open" && req.Status != "cancelled" {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status filter %q", req.Status)
	}

	views, err := s.svc.UserOrders(ctx, maker, req.Status)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list user orders: %v", err)
	}

	orders := make([]*queryv1.Order, 0, len(views))
	for _, v := range views {
		pb := &queryv1.Order{
			OrderId:    v.OrderID,
			Maker:      v.Maker,
			HaveAsset:  v.HaveAsset,
			HaveAmount: v.HaveAmount,
			WantAsset:  v.WantAsset,
			WantAmount: v.WantAmount,
			FillAmount: v.FillAmount,
			CreatedAt:  timestamppb.New(v.CreatedAt),
			Status:     v.Status,
		}
		if v.ExpiresAt != nil {
			pb.ExpiresAt = timestamppb.New(*v.ExpiresAt)
		}
		orders = append(orders, pb)
	}
	return &queryv1.ListUserOrdersResponse{Orders: orders}, nil
}

func (s *queryServiceImpl) ResolveAsset(ctx context.Context, req *queryv1.ResolveAssetRequest) (*queryv1.ResolveAssetResponse, error) {
	address, err := parseAddress("address", req.Address)
	if err != nil {
		return nil, err
	}

	id, err := s.svc.ResolveAsset(address)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &queryv1.ResolveAssetResponse{AssetId: uint32(id)}, nil
}

func (s *queryServiceImpl) ListAssets(ctx context.Context, req *queryv1.ListAssetsRequest) (*queryv1.ListAssetsResponse, error) {
	entries := s.svc.Assets()
	assets := make([]*queryv1.Asset, 0, len(entries))
	for _, e := range entries {
		assets = append(assets, &queryv1.Asset{
			AssetId: uint32(e.ID),
			Address: e.Address.Hex(),
		})
	}
	return &queryv1.ListAssetsResponse{Assets: assets}, nil
}

func (s *queryServiceImpl) ListEvents(ctx context.Context, req *queryv1.ListEventsRequest) (*queryv1.ListEventsResponse, error) {
	views, err := s.svc.Events(ctx, req.FromSequence, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list events: %v", err)
	}

	events := make([]*queryv1.Event, 0, len(views))
	for _, v := range views {
		events = append(events, &queryv1.Event{
			Sequence:    v.Sequence,
			EventId:     v.EventID,
			Kind:        v.Kind,
			PayloadJson: string(v.Payload),
			StateHash:   v.StateHash,
			PrevHash:    v.PrevHash,
			Timestamp:   timestamppb.New(v.Timestamp),
		})
	}
	return &queryv1.ListEventsResponse{Events: events}, nil
}

func (s *queryServiceImpl) VerifyIntegrity(ctx context.Context, req *queryv1.VerifyIntegrityRequest) (*queryv1.VerifyIntegrityResponse, error) {
	report, err := s.svc.VerifyIntegrity(ctx, req.FromSequence)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &queryv1.VerifyIntegrityResponse{
		FromSequence: report.FromSequence,
		ToSequence:   report.ToSequence,
		Checked:      report.Checked,
		Intact:       report.Intact,
	}
	if report.BrokenAt != nil {
		resp.BrokenAt = *report.BrokenAt
	}
	return resp, nil
}

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	engine      *core.Exchange
	snapMgr     *persistence.SnapshotManager
	projection  *projection.Worker
	eventReader *persistence.EventLogWriter
	health      *observability.HealthChecker
	startTime   time.Time
}

func (s *adminServiceImpl) RegisterAsset(ctx context.Context, req *adminv1.RegisterAssetRequest) (*adminv1.RegisterAssetResponse, error) {
	caller, err := parseAddress("caller", req.Caller)
	if err != nil {
		return nil, err
	}
	address, err := parseAddress("address", req.Address)
	if err != nil {
		return nil, err
	}

	id, err := s.engine.RegisterAsset(ctx, caller, address)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &adminv1.RegisterAssetResponse{AssetId: uint32(id)}, nil
}

func (s *adminServiceImpl) CreateSnapshot(ctx context.Context, req *adminv1.CreateSnapshotRequest) (*adminv1.CreateSnapshotResponse, error) {
	snap := s.engine.CreateSnapshot()
	if err := s.snapMgr.SaveSnapshot(ctx, snap); err != nil {
		return nil, status.Errorf(codes.Internal, "save snapshot: %v", err)
	}

	// A restore into a throwaway engine proves the document round-trips.
	probe := core.NewExchange(s.engine.Admin(), nil, core.SystemClock(), nil, nil, nil)
	if err := probe.RestoreSnapshot(snap); err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot failed verification: %v", err)
	}
	if err := s.snapMgr.MarkVerified(ctx, snap.Sequence); err != nil {
		return nil, status.Errorf(codes.Internal, "mark snapshot verified: %v", err)
	}

	return &adminv1.CreateSnapshotResponse{Sequence: snap.Sequence}, nil
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := s.projection.Rebuild(ctx, s.eventReader); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild projections: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{}, nil
}

func (s *adminServiceImpl) GetStatus(ctx context.Context, req *adminv1.GetStatusRequest) (*adminv1.GetStatusResponse, error) {
	tip := s.engine.StateHash()
	return &adminv1.GetStatusResponse{
		Sequence:      s.engine.Sequence(),
		StateHash:     fmt.Sprintf("%x", tip[:]),
		OpenOrders:    int32(len(s.engine.OpenOrders())),
		Ready:         s.health != nil && s.health.IsReady(),
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}, nil
}
