package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, newRecipeViews(recipes), http.StatusOK)
}

// createRecipe stores a recipe owned by the session's user. A user_id in the
// body is ignored.
func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	user, _ := utils.GetUserFromContext(r.Context())

	var draft models.RecipeDraft
	if err := decodeJSON(r, &draft); err != nil {
		h.writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(r.Context(), user.ID, draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, newRecipeView(recipe), http.StatusCreated)
}
