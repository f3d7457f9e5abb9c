package main

import (
	"context"
	"fmt"
	"time"

	"consig_origination/internal/adapter/http/handlers"
	"consig_origination/internal/adapter/http/routes"
	"consig_origination/internal/adapter/persistence/memory"
	"consig_origination/internal/adapter/persistence/repository"
	"consig_origination/internal/infrastructure/config"
	"consig_origination/internal/infrastructure/database"
	"consig_origination/internal/infrastructure/gateways"
	"consig_origination/internal/infrastructure/lock"
	"consig_origination/internal/infrastructure/logger"
	"consig_origination/internal/infrastructure/parameters"
	"consig_origination/internal/infrastructure/queue"
	"consig_origination/internal/infrastructure/storage"
	"consig_origination/internal/usecase"
	"consig_origination/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const serviceName = "contract-origination"

type app struct {
	cfg config.Config
	log *zap.Logger

	contracts  *usecase.ContractUseCase
	batches    *usecase.BatchUseCase
	teimosinha *usecase.TeimosinhaUseCase
	documents  *usecase.DocumentUseCase

	pool    *queue.WorkerPool
	closers []func()
}

type persistence struct {
	contracts   interfaces.IContractRepository
	retries     interfaces.IRetryAttemptRepository
	attachments interfaces.IAttachmentRepository
	blobs       interfaces.IBlobStorage
}

func buildApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, func() { _ = log.Sync() })

	store, err := a.openStore(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	params, err := parameters.NewFileProvider(cfg.ParametersFile)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("backoffice parameters: %w", err)
	}

	gw := gateways.Config{Timeout: cfg.GatewayTimeout}
	bureau, err := gateways.NewBureauGateway(withPartner(gw, cfg.Bureau), cfg.GatewayMock, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("bureau gateway: %w", err)
	}
	hub, err := gateways.NewSignatureHubGateway(withPartner(gw, cfg.SignatureHub), cfg.GatewayMock, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("signature hub gateway: %w", err)
	}
	sms, err := gateways.NewSMSGateway(withPartner(gw, cfg.SMS), cfg.SMSFrom, cfg.GatewayMock, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("sms gateway: %w", err)
	}
	shortener, err := gateways.NewShortenerGateway(withPartner(gw, cfg.Shortener), cfg.GatewayMock, log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("url shortener: %w", err)
	}

	a.pool = queue.NewWorkerPool(cfg.WorkerCount, cfg.QueueSize, cfg.GatewayTimeout*2, log)
	a.pool.Start()
	a.closers = append(a.closers, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.pool.Shutdown(shutdownCtx); err != nil {
			log.Warn("[app][queue] shutdown incomplete", zap.Error(err))
		}
	})

	a.contracts = usecase.NewContractUseCase(usecase.ContractDeps{
		Repo:      store.contracts,
		Retries:   store.retries,
		Params:    params,
		Bureau:    bureau,
		Hub:       hub,
		SMS:       sms,
		Shortener: shortener,
		Locker:    a.locker(),
		Queue:     a.pool,
		Logger:    log,
	}, usecase.OrchestratorConfig{
		OriginClient:   cfg.OriginClient,
		MinWitnesses:   cfg.MinWitnesses,
		GatewayTimeout: cfg.GatewayTimeout,
		LockTTL:        cfg.LockTTL,
	})
	a.batches = usecase.NewBatchUseCase(a.contracts)
	a.teimosinha = usecase.NewTeimosinhaUseCase(a.contracts, store.retries)
	a.documents = usecase.NewDocumentUseCase(a.contracts, store.attachments, store.blobs)

	log.Info("[app][startup] ready",
		zap.String("environment", cfg.Environment),
		zap.String("store", cfg.StoreBackend),
		zap.Bool("gateway_mock", cfg.GatewayMock))
	return a, nil
}

func (a *app) openStore(ctx context.Context) (persistence, error) {
	if a.cfg.StoreBackend == config.StoreMemory {
		a.log.Warn("[app][startup] using in-memory store, data is lost on exit")
		store := memory.NewStore()
		return persistence{
			contracts:   store,
			retries:     store,
			attachments: memory.NewAttachmentStore(),
			blobs:       storage.NewMemoryStorage(fmt.Sprintf("http://localhost:%d/documents", a.cfg.Port)),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return persistence{}, fmt.Errorf("dynamodb: %w", err)
	}
	tables := repository.TablesFromEnv()
	if a.cfg.CreateTables {
		if err := repository.EnsureTables(ctx, ddb, tables, a.log); err != nil {
			return persistence{}, fmt.Errorf("dynamodb tables: %w", err)
		}
	}

	s3Client, err := database.ConnectS3(ctx)
	if err != nil {
		return persistence{}, fmt.Errorf("s3: %w", err)
	}
	blobs, err := storage.NewS3Storage(s3Client, a.cfg.S3Bucket, a.cfg.PresignTTL, a.log)
	if err != nil {
		return persistence{}, fmt.Errorf("s3 storage: %w", err)
	}

	return persistence{
		contracts:   repository.NewContractDynamoRepository(ddb, tables),
		retries:     repository.NewRetryAttemptDynamoRepository(ddb, tables),
		attachments: repository.NewAttachmentDynamoRepository(ddb, tables),
		blobs:       blobs,
	}, nil
}

// locker picks Redis when an address is configured. Without Redis, locks only hold
// within this process.
func (a *app) locker() interfaces.IContractLocker {
	if a.cfg.Redis.Addr == "" {
		a.log.Warn("[app][startup] REDIS_ADDR not set, using in-process locks")
		return lock.NewMemoryLocker()
	}
	client := lock.NewRedisClient(a.cfg.Redis)
	a.closers = append(a.closers, func() { _ = client.Close() })
	return lock.NewRedisLocker(client, a.log)
}

func (a *app) handlers() routes.Handlers {
	return routes.Handlers{
		Contracts:  handlers.NewContractHandler(a.contracts, a.batches, a.log),
		Teimosinha: handlers.NewTeimosinhaHandler(a.teimosinha, a.log),
		Documents:  handlers.NewDocumentHandler(a.documents, a.log),
	}
}

// close runs the registered closers in reverse order.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func withPartner(base gateways.Config, partner config.GatewayConfig) gateways.Config {
	base.BaseURL = partner.BaseURL
	base.APIKey = partner.APIKey
	return base
}
