package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dfcamara/gestao-comercial/internal/infra/http/handlers"
	appmiddleware "github.com/dfcamara/gestao-comercial/internal/infra/http/middleware"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/awesomeapi"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/erp"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/feriados"
	"github.com/dfcamara/gestao-comercial/internal/infra/integration/viacep"
	"github.com/dfcamara/gestao-comercial/internal/infra/persistence"
	"github.com/dfcamara/gestao-comercial/internal/usecase"
)

func main() {
	godotenv.Load()

	erpURL := getEnv("ERP_API_URL", "http://localhost:5000")

	// Cache local dos motivos de recusa
	motivoStore, err := persistence.NewMotivoStore(getEnv("MOTIVOS_DB", "motivos.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer motivoStore.Close()

	// 1. Clientes de integração
	erpClient := erp.NewClient(erpURL)
	cepClient := viacep.NewClient(getEnv("VIACEP_URL", "https://viacep.com.br"))
	cotacaoClient := awesomeapi.NewClient(getEnv("AWESOMEAPI_URL", "https://economia.awesomeapi.com.br"))
	feriadosClient := feriados.NewClient(getEnv("FERIADOS_URL", "https://date.nager.at/api/v3"))

	// 2. UseCases
	criarUC := usecase.NewCriarClienteUseCase(erpClient)
	alterarUC := usecase.NewAlterarClienteUseCase(erpClient)
	excluirUC := usecase.NewExcluirClienteUseCase(erpClient)
	listarUC := usecase.NewListarLeadsUseCase(erpClient)
	propostaUC := usecase.NewEnviarPropostaUseCase(erpClient)
	contratoUC := usecase.NewGerarContratoUseCase(erpClient, motivoStore)
	dashboardUC := usecase.NewDashboardUseCase(erpClient, cotacaoClient, feriadosClient)

	// 3. Handlers
	clienteHandler := handlers.NewClienteHandler(criarUC, alterarUC, excluirUC, erpClient)
	leadHandler := handlers.NewLeadHandler(listarUC, propostaUC, contratoUC, erpClient)
	cepHandler := handlers.NewCEPHandler(cepClient)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	relatorioHandler := handlers.NewRelatorioHandler()
	healthHandler := handlers.NewHealthHandler(erpURL, motivoStore)

	// 4. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/leads", leadHandler.HandleListar)
	r.Post("/leads", clienteHandler.HandleCriar)
	r.Get("/leads/{cpf}", clienteHandler.HandleBuscar)
	r.Put("/leads/{cpf}", clienteHandler.HandleAlterar)
	r.Delete("/leads/{cpf}", clienteHandler.HandleExcluir)
	r.Post("/leads/{cpf}/proposta", leadHandler.HandleProposta)
	r.Post("/leads/{cpf}/contrato", leadHandler.HandleContrato)

	r.Get("/cep/{cep}", cepHandler.HandleBuscar)
	r.Get("/dashboard", dashboardHandler.Handle)
	r.Get("/contratos", relatorioHandler.HandleContratos)
	r.Get("/relatorio", relatorioHandler.HandleRelatorio)

	port := ":" + getEnv("PORT", "8080")
	log.Printf("🔥 Gestão Comercial rodando na porta %s (ERP em %s)", port, erpURL)
	http.ListenAndServe(port, r)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
