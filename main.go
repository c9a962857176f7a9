// Package main, emlakkit backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//   1. Config'i yükle (session secret burada çözülür — server traffic
//      almadan önce ya geçerli bir secret vardır ya da process hiç başlamaz)
//   2. Database'i başlat
//   3. Repository'leri oluştur (DB bağlantısı ile)
//   4. Service'leri oluştur (repository'ler ile)
//   5. -create-admin modu: hesap oluştur ve çık (HTTP server hiç başlamaz)
//   6. Handler'ları oluştur (service'ler ile)
//   7. Middleware'ları oluştur
//   8. HTTP router'ı kur, route'ları bağla
//   9. CORS yapılandır
//  10. HTTP Server'ı başlat
//  11. Graceful shutdown
//
// Global değişken YOK — her şey bu fonksiyonda oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/akinalp/emlakkit/config"
	"github.com/akinalp/emlakkit/database"
	"github.com/akinalp/emlakkit/handlers"
	"github.com/akinalp/emlakkit/middleware"
	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg/cache"
	"github.com/akinalp/emlakkit/pkg/email"
	"github.com/akinalp/emlakkit/pkg/ratelimit"
	"github.com/akinalp/emlakkit/repository"
	"github.com/akinalp/emlakkit/services"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Admin provisioning flag'leri.
	// Self-registration endpoint'i bilinçli olarak YOKTUR — hesaplar sadece
	// bu out-of-band yoldan oluşturulur:
	//   ./emlakkit -create-admin -email admin@site.com -password '...' -name 'Admin'
	createAdmin := flag.Bool("create-admin", false, "create an admin account and exit")
	adminEmail := flag.String("email", "", "admin email (with -create-admin)")
	adminPassword := flag.String("password", "", "admin password (with -create-admin)")
	adminName := flag.String("name", "", "admin display name (with -create-admin)")
	flag.Parse()

	log.Println("[main] emlakkit server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (mode=%s, port=%d)", cfg.Mode, cfg.Server.Port)

	// ─── 2. Database ───
	// Migration'lar binary'ye gömülüdür (embed.FS) — deploy tek dosyadır,
	// yanında migrations/ dizini taşınmaz.
	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		log.Fatalf("[main] failed to load embedded migrations: %v", err)
	}

	db, err := database.New(cfg.Database.Path, migrationsFS)
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	adminRepo := repository.NewSQLiteAdminRepo(db.Conn)
	postRepo := repository.NewSQLitePostRepo(db.Conn)

	// ─── 4. Service Layer ───
	sessionCodec := services.NewSessionCodec(cfg.Session.Secret)
	authService := services.NewAuthService(adminRepo, sessionCodec)

	// ─── 5. Admin Provisioning Modu ───
	// -create-admin verilmişse hesabı oluştur ve çık. HTTP server başlamaz.
	if *createAdmin {
		runCreateAdmin(authService, *adminEmail, *adminPassword, *adminName)
		return
	}

	// Public blog listesi 30 saniye cache'lenir — içerik nadiren değişir,
	// her ziyaretçi request'inde DB sorgusu gereksiz.
	postListCache := cache.New[string, []models.Post](30*time.Second, 5*time.Minute)
	defer postListCache.Close()

	blogService := services.NewBlogService(postRepo, postListCache)
	generatorService := services.NewGeneratorService()
	toolService := services.NewToolService()

	// Email gönderimi opsiyoneldir — API key yoksa nil kalır,
	// test-send endpoint'i 503 döner.
	var emailSender email.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
		log.Println("[main] email sending enabled (Resend)")
	} else {
		log.Println("[main] RESEND_API_KEY not set, email sending disabled")
	}

	// Login brute-force koruması: IP başına 2 dakikada 5 deneme.
	loginLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)
	defer loginLimiter.Close()

	// ─── 6. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, loginLimiter, cfg.Session.MaxAgeSec, cfg.IsProduction())
	postHandler := handlers.NewPostHandler(blogService)
	calculatorHandler := handlers.NewCalculatorHandler()
	generatorHandler := handlers.NewGeneratorHandler(generatorService, emailSender)
	toolHandler := handlers.NewToolHandler(toolService)

	// ─── 7. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// ─── 8. HTTP Router ───
	mux := http.NewServeMux()

	// Middleware chain helper — admin endpoint'lerini sarar
	admin := func(handler http.HandlerFunc) http.Handler {
		return authMiddleware.Require(http.HandlerFunc(handler))
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"emlakkit"}`)
	})

	// Auth — login public, me/logout oturum üzerinden çalışır
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout) // idempotent — auth gerekmez
	mux.Handle("GET /api/auth/me", admin(authHandler.Me))

	// Araç kataloğu — public
	mux.HandleFunc("GET /api/tools", toolHandler.List)

	// Hesaplayıcılar — public, sitenin ana çekim gücü
	mux.HandleFunc("POST /api/calculators/mortgage", calculatorHandler.Mortgage)
	mux.HandleFunc("POST /api/calculators/cashflow", calculatorHandler.CashFlow)
	mux.HandleFunc("POST /api/calculators/construction", calculatorHandler.Construction)
	mux.HandleFunc("POST /api/calculators/roi", calculatorHandler.FlipROI)
	mux.HandleFunc("POST /api/calculators/rental-tax", calculatorHandler.RentalTax)

	// Üreticiler — üretim public, test gönderimi admin-only
	mux.HandleFunc("POST /api/generators", generatorHandler.Generate)
	mux.Handle("POST /api/admin/newsletter/test-send", admin(generatorHandler.NewsletterTestSend))

	// Blog — public okuma
	mux.HandleFunc("GET /api/posts", postHandler.ListPublished)
	mux.HandleFunc("GET /api/posts/{slug}", postHandler.GetBySlug)

	// Blog — admin CMS (auth middleware arkasında)
	mux.Handle("GET /api/admin/posts", admin(postHandler.ListAll))
	mux.Handle("POST /api/admin/posts", admin(postHandler.Create))
	mux.Handle("GET /api/admin/posts/{id}", admin(postHandler.GetByID))
	mux.Handle("PUT /api/admin/posts/{id}", admin(postHandler.Update))
	mux.Handle("DELETE /api/admin/posts/{id}", admin(postHandler.Delete))

	// ─── 9. CORS ───
	// AllowCredentials: true ZORUNLU — session cookie'si cross-origin
	// istekle gidebilmeli. Bu yüzden origin wildcard (*) KULLANILAMAZ,
	// izinli origin'ler tek tek listelenir.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // frontend dev server
			"https://emlakkit.app",
			"https://www.emlakkit.app",
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		Debug:            false,
	})

	handler := corsHandler.Handler(mux)

	// ─── 10. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 11. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Yeni request kabul etmeyi durdur, mevcut request'lerin bitmesini bekle (5sn timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}

// runCreateAdmin, -create-admin modunda hesap oluşturur.
// Hata durumunda nonzero exit — deploy script'leri başarıyı exit code'dan anlar.
func runCreateAdmin(authService services.AuthService, adminEmail, password, name string) {
	if adminEmail == "" || password == "" || name == "" {
		log.Fatal("[main] -create-admin requires -email, -password and -name")
	}

	admin, err := authService.CreateAdmin(context.Background(), &models.CreateAdminRequest{
		Email:       adminEmail,
		Password:    password,
		DisplayName: name,
	})
	if err != nil {
		log.Fatalf("[main] failed to create admin: %v", err)
	}

	log.Printf("[main] admin created: %s (%s)", admin.Email, admin.ID)
}
