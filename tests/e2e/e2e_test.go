package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"p2pshare/internal/database"
	"p2pshare/internal/domain"
	"p2pshare/internal/middleware"
	"p2pshare/internal/modules/auth"
	"p2pshare/internal/modules/booking"
	"p2pshare/internal/modules/catalog"
	"p2pshare/internal/modules/messaging"
	jwtsvc "p2pshare/internal/pkg/jwt"
	"p2pshare/internal/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	uploadDir := t.TempDir()

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(itemRepo, userRepo), uploadDir, 10<<20)
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, itemRepo, userRepo))
	messagingHandler := messaging.NewHandler(messaging.NewService(messageRepo, userRepo))

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "P2P Share App API - Suisse"})
		})
		api.GET("/cantons", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"cantons": domain.SwissCantons})
		})

		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			messagingHandler.RegisterProtectedRoutes(protected)
		}
	}

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func registerUser(t *testing.T, r *gin.Engine, email, nom, prenom, canton string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "motdepasse",
		"nom":      nom,
		"prenom":   prenom,
		"canton":   canton,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	require.Equal(t, "bearer", body["token_type"])
	return body["access_token"].(string)
}

func createItem(t *testing.T, r *gin.Engine, token string, prix string, fileNames ...string) int64 {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("titre", "Tondeuse à gazon")
	_ = mw.WriteField("description", "Tondeuse thermique en bon état")
	_ = mw.WriteField("categorie", "Jardinage")
	_ = mw.WriteField("prix_par_jour", prix)
	_ = mw.WriteField("canton", "Vaud")
	_ = mw.WriteField("ville", "Lausanne")
	for _, name := range fileNames {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/items", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	return int64(body["id"].(float64))
}

func TestHealthAndCantons(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = doJSON(r, http.MethodGet, "/api/cantons", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cantons := decode(t, w)["cantons"].([]any)
	assert.Len(t, cantons, 26)
	assert.Contains(t, cantons, "Genève")
	assert.Contains(t, cantons, "Zürich")
	assert.Equal(t, "Aargau", cantons[0])
}

func TestRegisterLoginAndProfile(t *testing.T) {
	r := setupRouter(t)

	token := registerUser(t, r, "marie@example.ch", "Dupont", "Marie", "Vaud")

	// token resolves to the new user on a protected route
	w := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.Equal(t, "marie@example.ch", profile["email"])
	assert.Equal(t, "Vaud", profile["canton"])
	assert.Equal(t, 0.0, profile["note_moyenne"])

	// duplicate email fails with 400
	w = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "marie@example.ch",
		"password": "autremotdepasse",
		"nom":      "Dupont",
		"prenom":   "Marie",
		"canton":   "Vaud",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// invalid canton fails with 400
	w = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "luc@example.ch",
		"password": "motdepasse",
		"nom":      "Martin",
		"prenom":   "Luc",
		"canton":   "Bretagne",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login with correct and wrong password
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "marie@example.ch",
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode(t, w)
	assert.NotEmpty(t, login["access_token"])
	user := login["user"].(map[string]any)
	assert.Equal(t, "Dupont", user["nom"])

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "marie@example.ch",
		"password": "mauvais",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGate(t *testing.T) {
	r := setupRouter(t)

	// missing credentials
	w := doJSON(r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = doJSON(r, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid signature but unknown subject
	orphan, err := jwtsvc.New("e2e-test-secret", time.Hour).GenerateToken(424242)
	require.NoError(t, err)
	w = doJSON(r, http.MethodGet, "/api/auth/me", orphan, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestItemLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "marie@example.ch", "Dupont", "Marie", "Vaud")

	// creating an item requires authentication
	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	itemID := createItem(t, r, token, "35.0", "photo1.jpg", "photo2.png")

	// fetch enriched item
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/items/%d", itemID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	item := decode(t, w)
	assert.Equal(t, "Tondeuse à gazon", item["titre"])
	assert.Equal(t, 5.0, item["frais_inscription"])
	assert.Equal(t, "Marie Dupont", item["proprietaire_nom"])

	images := item["images"].([]any)
	require.Len(t, images, 2)

	// each stored reference resolves as a static resource
	for _, img := range images {
		req := httptest.NewRequest(http.MethodGet, img.(string), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, img)
	}

	// malformed and missing identifiers
	w = doJSON(r, http.MethodGet, "/api/items/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodGet, "/api/items/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// search finds it
	w = doJSON(r, http.MethodGet, "/api/items?q=tondeuse&canton=Vaud", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]any)
	assert.Len(t, items, 1)

	w = doJSON(r, http.MethodGet, "/api/items?prix_max=10", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

func TestBookingScenario(t *testing.T) {
	r := setupRouter(t)

	tokenA := registerUser(t, r, "marie@example.ch", "Dupont", "Marie", "Vaud")
	itemID := createItem(t, r, tokenA, "35.0")

	// owner cannot book their own item
	w := doJSON(r, http.MethodPost, "/api/bookings", tokenA, gin.H{
		"item_id":    itemID,
		"date_debut": "2025-06-01T00:00:00Z",
		"date_fin":   "2025-06-03T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	tokenB := registerUser(t, r, "luc@example.ch", "Martin", "Luc", "Genève")

	// invalid date range
	w = doJSON(r, http.MethodPost, "/api/bookings", tokenB, gin.H{
		"item_id":    itemID,
		"date_debut": "2025-06-03T00:00:00Z",
		"date_fin":   "2025-06-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown item
	w = doJSON(r, http.MethodPost, "/api/bookings", tokenB, gin.H{
		"item_id":    99999,
		"date_debut": "2025-06-01T00:00:00Z",
		"date_fin":   "2025-06-03T00:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// two days at 35.0/day plus the 5.0 listing fee
	w = doJSON(r, http.MethodPost, "/api/bookings", tokenB, gin.H{
		"item_id":    itemID,
		"date_debut": "2025-06-01T00:00:00Z",
		"date_fin":   "2025-06-03T00:00:00Z",
		"message":    "Je passerai la chercher samedi",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, 75.0, created["prix_total"])

	w = doJSON(r, http.MethodGet, "/api/bookings/mes-reservations", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	reservations := decode(t, w)["reservations"].([]any)
	require.Len(t, reservations, 1)
	res := reservations[0].(map[string]any)
	assert.Equal(t, "en_attente", res["statut"])
	assert.Equal(t, "Tondeuse à gazon", res["item_titre"])
	assert.Equal(t, "Luc Martin", res["locataire_nom"])

	// the owner has no renter-side bookings
	w = doJSON(r, http.MethodGet, "/api/bookings/mes-reservations", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["reservations"])
}

func TestMessagingScenario(t *testing.T) {
	r := setupRouter(t)

	tokenA := registerUser(t, r, "marie@example.ch", "Dupont", "Marie", "Vaud")
	tokenB := registerUser(t, r, "luc@example.ch", "Martin", "Luc", "Genève")

	// recipient must exist
	w := doJSON(r, http.MethodPost, "/api/messages", tokenA, gin.H{
		"destinataire_id": 99999,
		"contenu":         "Bonjour",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// find B's id via login
	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "luc@example.ch",
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	idB := int64(decode(t, w)["user"].(map[string]any)["id"].(float64))

	w = doJSON(r, http.MethodPost, "/api/messages", tokenA, gin.H{
		"destinataire_id": idB,
		"contenu":         "La tondeuse est-elle disponible ?",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// B answers
	w = doJSON(r, http.MethodGet, "/api/auth/me", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	idA := int64(decode(t, w)["id"].(float64))

	w = doJSON(r, http.MethodPost, "/api/messages", tokenB, gin.H{
		"destinataire_id": idA,
		"contenu":         "Oui, dès samedi",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A sees both messages, newest first, with sender names
	w = doJSON(r, http.MethodGet, "/api/messages/conversations", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode(t, w)["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "Oui, dès samedi", first["contenu"])
	assert.Equal(t, "Luc Martin", first["expediteur_nom"])
	assert.Equal(t, false, first["lu"])

	// sending to yourself is allowed and shows up exactly once per call
	w = doJSON(r, http.MethodPost, "/api/messages", tokenA, gin.H{
		"destinataire_id": idA,
		"contenu":         "Note pour moi-même",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/messages/conversations", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages = decode(t, w)["messages"].([]any)
	assert.Len(t, messages, 3)
}
