package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"lojaadmin/config"
	"lojaadmin/internal/pkg/logger"
	"lojaadmin/internal/pkg/session"

	// Camadas da aplicação, para Injeção de Dependências
	"lojaadmin/internal/api"
	"lojaadmin/internal/cli"
	"lojaadmin/internal/repository/categoriarepo"
	"lojaadmin/internal/repository/produtorepo"
	"lojaadmin/internal/repository/usuariorepo"
	"lojaadmin/internal/service/authservice"
	"lojaadmin/internal/service/categoriaservice"
	"lojaadmin/internal/service/produtoservice"
)

func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		// Sem .env, seguimos: as variáveis podem estar no ambiente do sistema.
		log.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	logg := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	logg.Info("configurações carregadas", map[string]interface{}{"api": cfg.APIBaseURL})

	// 2. Store de Sessão (o backend é escolhido por config)
	var store session.Store
	switch cfg.SessionBackend {
	case "redis":
		redisStore, err := session.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			logg.Fatal("falha ao conectar ao Redis para a sessão", err)
		}
		store = redisStore
	case "memory":
		store = session.NewMemoryStore()
	default:
		store = session.NewFileStore(cfg.SessionFile)
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Client/Querier -> Repository -> Service -> Views/Router

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, store, logg)
	querier := api.NewQuerier(client, logg)

	produtoRepo := produtorepo.NewRepository(querier, logg)
	categoriaRepo := categoriarepo.NewRepository(querier, logg)
	usuarioRepo := usuariorepo.NewRepository(querier, logg)

	auth := authservice.NewService(usuarioRepo, store, logg)
	produtoEditor := produtoservice.NewEditor(produtoRepo, logg)
	categoriaEditor := categoriaservice.NewEditor(categoriaRepo, logg)

	in := bufio.NewReader(os.Stdin)
	out := os.Stdout

	loginView := cli.NewLoginView(auth, in, out)
	registerView := cli.NewRegisterView(auth, in, out)
	produtosView := cli.NewProdutosView(produtoEditor, categoriaEditor, auth, in, out)
	categoriasView := cli.NewCategoriasView(categoriaEditor, in, out)

	// 4. Roteador: /produtos e /categorias são rotas protegidas pela guarda.
	router := cli.NewRouter(auth, logg)
	router.Handle("/login", false, loginView.Render)
	router.Handle("/register", false, registerView.Render)
	router.Handle("/produtos", true, produtosView.Render)
	router.Handle("/categorias", true, categoriasView.Render)

	// 5. Execução com cancelamento por sinal (Ctrl+C encerra o shell)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := router.Run(ctx, "/"); err != nil && err != context.Canceled {
		logg.Fatal("o shell encerrou com erro", err)
	}

	logg.Info("até logo", nil)
}
