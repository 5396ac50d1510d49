package main

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/roylee0704/gron"

	"github.com/mystic-bots/gadalka-bot/cfg"
	"github.com/mystic-bots/gadalka-bot/internal/db"
	log2 "github.com/mystic-bots/gadalka-bot/internal/log"
	"github.com/mystic-bots/gadalka-bot/internal/model"
	"github.com/mystic-bots/gadalka-bot/internal/msgs"
	"github.com/mystic-bots/gadalka-bot/internal/repository"
	services2 "github.com/mystic-bots/gadalka-bot/internal/services"
	administrator2 "github.com/mystic-bots/gadalka-bot/internal/services/administrator"
	"github.com/mystic-bots/gadalka-bot/internal/services/astrology"
	"github.com/mystic-bots/gadalka-bot/internal/services/auth"
	"github.com/mystic-bots/gadalka-bot/internal/services/extra"
	"github.com/mystic-bots/gadalka-bot/internal/services/limits"
	"github.com/mystic-bots/gadalka-bot/internal/services/numerology"
	"github.com/mystic-bots/gadalka-bot/internal/services/tarot"
	"github.com/mystic-bots/gadalka-bot/internal/utils"
)

func main() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	logger := log2.NewDefaultLogger().Prefix("Gadalka Bot")
	log2.PrintLogo("Gadalka Bot")

	config, err := cfg.Load()
	if err != nil {
		logger.Fatal("error load config: %s", err.Error())
	}

	dataBase, err := db.OpenPostgres(config.DB)
	if err != nil {
		logger.Fatal("error open database: %s", err.Error())
	}
	logger.Ok("Database is ready")

	contentRepo := repository.NewContent(dataBase)
	if err := contentRepo.SeedIfEmpty(); err != nil {
		logger.Fatal("error seed content: %s", err.Error())
	}

	state, err := db.NewStateStore(config.Redis.Addr)
	if err != nil {
		logger.Fatal("error connect redis: %s", err.Error())
	}

	api, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		logger.Fatal("error start bot: %s", err.Error())
	}

	bot := model.NewBot(api, config.BotLink, config.DefaultLanguage, config.DailyFreeLimit, config.AdminIDs)
	bot.Updates = startUpdates(api, config, logger)

	usersRepo := repository.NewUsers(dataBase)
	referralsRepo := repository.NewReferrals(dataBase)
	historyRepo := repository.NewHistory(dataBase)
	settingsRepo := repository.NewSettings(dataBase)

	service := msgs.NewService(bot, config.AdminIDs)

	authSrv := auth.NewAuthService(bot, service, usersRepo, referralsRepo, settingsRepo)
	adminSrv := administrator2.NewAdminService(bot, service, usersRepo, historyRepo, settingsRepo, state)

	userSrv := services2.NewUsersService(
		bot,
		authSrv,
		adminSrv,
		service,
		state,
		usersRepo,
		limits.NewService(historyRepo, config.DailyFreeLimit),
		settingsRepo,
		tarot.NewEngine(contentRepo, rnd),
		numerology.NewService(contentRepo),
		astrology.NewService(contentRepo),
		extra.NewService(rnd),
		rnd,
	)

	go startPrometheusHandler(logger, config.MetricsPort)

	service.SendNotificationToDeveloper("Bot is restarted", false)
	logger.Ok("Bot is running")

	cron := gron.New()
	go func() {
		time.Sleep(5 * time.Second)
		cron.Start()
	}()

	userSrv.ActionsWithUpdates(logger, utils.NewSpreader(time.Minute), cron)
}

func startUpdates(api *tgbotapi.BotAPI, config *cfg.Config, logger log2.Logger) tgbotapi.UpdatesChannel {
	if config.Transport.Mode != "webhook" {
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		return api.GetUpdatesChan(u)
	}

	wh, err := tgbotapi.NewWebhook(config.Transport.WebhookURL)
	if err != nil {
		logger.Fatal("error build webhook config: %s", err.Error())
	}
	if _, err := api.Request(wh); err != nil {
		logger.Fatal("error set webhook: %s", err.Error())
	}

	updates := make(chan tgbotapi.Update, api.Buffer)

	// The webhook gets its own mux so nothing else registered on the
	// default one leaks onto the public port.
	mux := http.NewServeMux()
	mux.HandleFunc("/"+api.Token, func(w http.ResponseWriter, r *http.Request) {
		update, err := api.HandleUpdate(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		updates <- *update
	})

	go func() {
		if err := http.ListenAndServe(config.Transport.WebhookListen, mux); err != nil {
			logger.Fatal("webhook listener stopped: %s", err.Error())
		}
	}()

	return updates
}

func startPrometheusHandler(logger log2.Logger, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Ok("Metrics can be read from %d port", port)
	metricErr := http.ListenAndServe(":"+strconv.Itoa(port), mux)
	if metricErr != nil {
		logger.Fatal("metrics stoped by metricErr: %s\n", metricErr.Error())
	}
}
