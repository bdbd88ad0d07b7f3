package main

import (
	auth "Voltra/internal/auth"
	battery "Voltra/internal/calc/battery"
	breaker "Voltra/internal/calc/breaker"
	conductor "Voltra/internal/calc/conductor"
	lighting "Voltra/internal/calc/lighting"
	batch "Voltra/internal/calc/premium/batch"
	importer "Voltra/internal/calc/premium/importer"
	report "Voltra/internal/calc/report"
	solar "Voltra/internal/calc/solar"
	profile "Voltra/internal/profile"
	repo "Voltra/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/history", profileH.SaveCalculation).Methods("POST")
	secureApi.HandleFunc("/history", profileH.History).Methods("GET")

	conductorH := &conductor.Handler{}
	batteryH := &battery.Handler{}
	solarH := &solar.Handler{}
	lightingH := &lighting.Handler{}
	breakerH := &breaker.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}

	secureApi.HandleFunc("/tools/conductor/size", conductorH.Size).Methods("POST")
	secureApi.HandleFunc("/tools/conductor/catalog", conductorH.Catalog).Methods("GET")
	secureApi.HandleFunc("/tools/battery/calc", batteryH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/solar/calc", solarH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/lighting/calc", lightingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/breaker/calc", breakerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/premium/batch/size", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/premium/import/size", importH.Sizing).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8443"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
