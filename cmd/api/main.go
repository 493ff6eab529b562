package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/database/postgres"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/statsclient"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/api"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/scheduler"
	"github.com/ghosteone/manager-api/internal/usecases/aggregating"
	"github.com/ghosteone/manager-api/internal/usecases/authenticating"
	"github.com/ghosteone/manager-api/internal/usecases/connecting"
	"github.com/ghosteone/manager-api/internal/usecases/deciding"
	"github.com/ghosteone/manager-api/internal/usecases/scoring"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	smartLinkRepo := repository.NewSmartLinkRepository(pgConn)
	clickEventRepo := repository.NewClickEventRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	scoreRepo := repository.NewScoreRepository(pgConn)
	decisionLogRepo := repository.NewDecisionLogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Fonte efêmera de analytics de streaming
	streamWatchClient := statsclient.NewClient(cfg)
	streamWatchIntegrator := streamwatch.New(cfg, streamWatchClient)

	connectionResolver := connecting.NewService(credentialRepo)

	contextBuilder := aggregating.NewService(
		cfg,
		connectionResolver,
		smartLinkRepo,
		campaignRepo,
		creativeRepo,
		clickEventRepo,
	)

	scorer := scoring.NewService(
		cfg,
		campaignRepo,
		smartLinkRepo,
		creativeRepo,
		clickEventRepo,
		scoreRepo,
		streamWatchIntegrator,
	)
	scoreReader := scoring.NewReadService(scoreRepo)

	decider := deciding.NewService(campaignRepo, scoreRepo, decisionLogRepo)

	// Coletores HTTP do Prometheus
	middleware.InitMetrics()

	// Recomputo periódico de scores das campanhas ativas
	scoreSyncService := scheduler.NewScoreSyncService(campaignRepo, scorer, cfg)
	if err := scoreSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recomputo de scores")
	} else {
		logrus.Info("Agendador de recomputo de scores iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		connectionResolver,
		contextBuilder,
		scorer,
		scoreReader,
		decider,
		authenticator,
		scoreSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
