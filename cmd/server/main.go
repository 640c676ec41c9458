package main

import (
	"context"
	"log"

	staticcatalog "emberwild/internal/adapter/catalog/static"
	httpadapter "emberwild/internal/adapter/http"
	metricsinmem "emberwild/internal/adapter/metrics/inmemory"
	staticpopulation "emberwild/internal/adapter/population/static"
	gormrepo "emberwild/internal/adapter/repo/gorm"
	"emberwild/internal/adapter/repo/memory"
	worldruntime "emberwild/internal/adapter/world/runtime"
	"emberwild/internal/app/activity"
	"emberwild/internal/app/catalog"
	"emberwild/internal/app/ports"
	"emberwild/internal/app/progress"
	"emberwild/internal/app/replay"
	"emberwild/internal/app/sim"
	"emberwild/internal/app/tick"
	"emberwild/internal/config"
	"emberwild/internal/domain/world"
	"emberwild/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	progressRepo, completionRepo, notifRepo, txManager := buildRepos(cfg)
	agents := buildPopulation(cfg)
	worldProvider := worldruntime.NewProvider(worldruntime.DefaultConfig())
	catalogProvider := staticcatalog.Provider{Root: cfg.CatalogDir}
	kpiRecorder := metricsinmem.NewRecorder()

	coordinator := sim.New(sim.Config{
		Seed:           cfg.Seed,
		Calendar:       world.NewCalendar(world.CalendarConfig{DaySeconds: cfg.DaySeconds}),
		Agents:         agents,
		ProgressRepo:   progressRepo,
		CompletionRepo: completionRepo,
		NotifRepo:      notifRepo,
		Tx:             txManager,
		Metrics:        kpiRecorder,
	})

	catalogUC := catalog.UseCase{Provider: catalogProvider, Sim: coordinator}
	registered, err := catalogUC.Reload(context.Background())
	if err != nil {
		log.Fatalf("load catalog from %s: %v", cfg.CatalogDir, err)
	}
	if err := coordinator.Hydrate(context.Background()); err != nil {
		log.Fatalf("hydrate session: %v", err)
	}

	h := httpadapter.Handler{
		ActivityUC: activity.UseCase{Sim: coordinator, Agents: agents, World: worldProvider},
		TickUC:     tick.UseCase{Sim: coordinator},
		ProgressUC: progress.UseCase{Sim: coordinator},
		CatalogUC:  catalogUC,
		ReplayUC:   replay.UseCase{Notifications: notifRepo},
		KPI:        kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("emberwild discovery server listening on %s (%d templates registered)", cfg.HTTPAddr, registered)
	s.Spin()
}

func buildRepos(cfg config.Config) (ports.ProgressRepository, ports.CompletionRepository, ports.NotificationRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		log.Println("no db dsn configured, using in-memory repositories")
		store := memory.NewStore()
		return memory.NewProgressRepo(store), memory.NewCompletionRepo(store), memory.NewNotificationRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrations.FS); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewProgressRepo(db), gormrepo.NewCompletionRepo(db), gormrepo.NewNotificationRepo(db), gormrepo.NewTxManager(db)
}

func buildPopulation(cfg config.Config) ports.AgentDirectory {
	dir, err := staticpopulation.Load(cfg.PopulationFile)
	if err != nil {
		log.Printf("population file unavailable (%v), notifications fall back to the generic actor", err)
		return nil
	}
	return dir
}
