package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Current cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.State
// @Router /cart [get]
func (s *Server) getCart(c *gin.Context) {
	st, err := s.carts.Get(c, c.GetString(sessionKey))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type addCartItemReq struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// @Summary Add product variant to cart
// @Description Same product and size merge into one line; quantities add up.
// @Tags cart
// @Accept json
// @Produce json
// @Param input body addCartItemReq true "Item"
// @Success 200 {object} cart.State
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (s *Server) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	st, err := s.carts.AddItem(c, c.GetString(sessionKey), req.ProductID, req.Size, req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type updateCartItemReq struct {
	Quantity int `json:"quantity"`
}

// @Summary Set line quantity
// @Description Quantity <= 0 removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Line ID (productId-size)"
// @Param input body updateCartItemReq true "Quantity"
// @Success 200 {object} cart.State
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [put]
func (s *Server) updateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	st, err := s.carts.UpdateQuantity(c, c.GetString(sessionKey), c.Param("id"), req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param id path string true "Line ID (productId-size)"
// @Success 200 {object} cart.State
// @Router /cart/items/{id} [delete]
func (s *Server) removeCartItem(c *gin.Context) {
	st, err := s.carts.RemoveItem(c, c.GetString(sessionKey), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} cart.State
// @Router /cart [delete]
func (s *Server) clearCart(c *gin.Context) {
	st, err := s.carts.Clear(c, c.GetString(sessionKey))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary Toggle cart panel visibility
// @Tags cart
// @Produce json
// @Success 200 {object} cart.State
// @Router /cart/toggle [post]
func (s *Server) toggleCart(c *gin.Context) {
	st, err := s.carts.ToggleOpen(c, c.GetString(sessionKey))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type checkoutReq struct {
	CustomerName string `json:"customerName"`
	Note         string `json:"note"`
}

// @Summary Compose WhatsApp order
// @Description Returns the order text and a wa.me link. No order is stored and the cart is kept.
// @Tags cart
// @Accept json
// @Produce json
// @Param input body checkoutReq false "Customer details"
// @Success 200 {object} service.CheckoutResult
// @Failure 400 {object} map[string]string
// @Router /cart/checkout [post]
func (s *Server) checkout(c *gin.Context) {
	var req checkoutReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
	}
	res, err := s.carts.Checkout(c, c.GetString(sessionKey), req.CustomerName, req.Note)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
