package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// ПОИСК
//

// Search ищет подстроку по проектам и задачам. Пустой запрос даёт
// пустой результат, а не весь каталог.
func (h *Handler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Search(c.Query("q")))
}
