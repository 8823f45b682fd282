package catalog

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"p2pshare/internal/pkg/response"
	"p2pshare/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultSearchLimit = 20

type Handler struct {
	service   *Service
	uploadDir string
	maxUpload int64
}

func NewHandler(service *Service, uploadDir string, maxUpload int64) *Handler {
	return &Handler{
		service:   service,
		uploadDir: uploadDir,
		maxUpload: maxUpload,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	itemsGroup := api.Group("/items")
	{
		itemsGroup.GET("", h.SearchItems)
		itemsGroup.GET("/:id", h.GetItem)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/items", h.CreateItem)
}

// CreateItem accepts a multipart form. Uploaded files are persisted under
// a generated unique name preserving the original extension; original
// filenames are discarded.
func (h *Handler) CreateItem(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := c.Request.ParseMultipartForm(h.maxUpload); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Formulaire invalide")
		return
	}

	prix, err := strconv.ParseFloat(c.PostForm("prix_par_jour"), 64)
	if err != nil || prix <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Prix par jour invalide")
		return
	}

	in := CreateItemInput{
		Titre:       c.PostForm("titre"),
		Description: c.PostForm("description"),
		Categorie:   c.PostForm("categorie"),
		PrixParJour: prix,
		Canton:      c.PostForm("canton"),
		Ville:       c.PostForm("ville"),
	}
	if in.Titre == "" || in.Description == "" || in.Categorie == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Champs obligatoires manquants")
		return
	}

	if err := os.MkdirAll(h.uploadDir, os.ModePerm); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Erreur de stockage des fichiers")
		return
	}

	var files []*multipart.FileHeader
	if c.Request.MultipartForm != nil {
		files = c.Request.MultipartForm.File["files"]
	}

	for _, file := range files {
		if file.Filename == "" {
			continue
		}
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		savePath := filepath.Join(h.uploadDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Erreur lors de l'enregistrement du fichier")
			return
		}

		in.Images = append(in.Images, "/uploads/"+filename)
	}

	item, err := h.service.CreateItem(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, ErrInvalidCanton) {
			response.Error(c, http.StatusBadRequest, "CANTON_INVALID", "Canton invalide")
			return
		}
		response.Error(c, http.StatusBadRequest, "ITEM_CREATE_FAILED", "Erreur lors de la création de l'objet")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      item.ID,
		"message": "Objet créé avec succès",
	})
}

func (h *Handler) SearchItems(c *gin.Context) {
	f := repository.SearchFilter{
		Query:     c.Query("q"),
		Canton:    c.Query("canton"),
		Categorie: c.Query("categorie"),
	}

	if prixMax := c.Query("prix_max"); prixMax != "" {
		v, err := strconv.ParseFloat(prixMax, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Prix maximum invalide")
			return
		}
		f.PrixMax = v
	}

	skip := 0
	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Paramètre skip invalide")
			return
		}
		skip = n
	}

	limit := defaultSearchLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Paramètre limit invalide")
			return
		}
		limit = n
	}

	items, err := h.service.SearchItems(c.Request.Context(), f, skip, limit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "SEARCH_FAILED", "Erreur lors de la recherche")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) GetItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID d'objet invalide")
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Objet non trouvé")
			return
		}
		response.Error(c, http.StatusBadRequest, "ITEM_FETCH_FAILED", "Erreur lors de la récupération de l'objet")
		return
	}

	c.JSON(http.StatusOK, item)
}
