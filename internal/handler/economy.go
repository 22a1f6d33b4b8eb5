package handler

import (
	"net/http"

	"github.com/brinepool/gatherbot/internal/domain"
	"github.com/brinepool/gatherbot/internal/economy"
	"github.com/brinepool/gatherbot/internal/logger"
)

// SellRequest selects what to sell. Leaving item empty sells a whole
// rarity; leaving both empty sells the whole activity inventory.
type SellRequest struct {
	UserKey  string `json:"user_key" validate:"required,max=64"`
	Username string `json:"username" validate:"max=100"`
	Activity string `json:"activity" validate:"required,oneof=fishing woodcutting"`
	Rarity   string `json:"rarity" validate:"omitempty,oneof=Common Uncommon Rare Epic Legendary Mythic"`
	Item     string `json:"item" validate:"omitempty,max=64"`
	Amount   int    `json:"amount" validate:"gte=0"`
}

// TierUpgradeRequest asks to advance one equipment line by one tier.
type TierUpgradeRequest struct {
	UserKey  string `json:"user_key" validate:"required,max=64"`
	Username string `json:"username" validate:"max=100"`
	Line     string `json:"line" validate:"required,oneof=rod axe"`
}

// LeveledUpgradeRequest asks to buy the next level of a passive upgrade.
type LeveledUpgradeRequest struct {
	UserKey  string `json:"user_key" validate:"required,max=64"`
	Username string `json:"username" validate:"max=100"`
	Upgrade  string `json:"upgrade" validate:"required,max=64"`
}

// HandleSell settles a sell request.
// @Summary Sell items back to the shop
// @Tags economy
// @Accept json
// @Produce json
// @Param request body SellRequest true "Sell selection"
// @Success 200 {object} domain.SellReceipt
// @Router /economy/sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		act, _ := domain.ParseActivity(req.Activity)
		sel := economy.SellSelection{
			Rarity: domain.Rarity(req.Rarity),
			Item:   req.Item,
			Amount: req.Amount,
		}

		receipt, err := svc.Sell(r.Context(), req.UserKey, req.Username, act, sel)
		if err != nil {
			log.Warn("Sell rejected", "error", err, "userKey", req.UserKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, receipt)
	}
}

// HandleTierUpgrade purchases the next equipment tier.
// @Summary Buy the next rod or axe tier
// @Tags economy
// @Accept json
// @Produce json
// @Param request body TierUpgradeRequest true "Equipment line"
// @Success 200 {object} domain.PurchaseReceipt
// @Router /economy/tier [post]
func HandleTierUpgrade(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TierUpgradeRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		receipt, err := svc.PurchaseTierUpgrade(r.Context(), req.UserKey, req.Username, domain.EquipmentLine(req.Line))
		if err != nil {
			log.Warn("Tier upgrade rejected", "error", err, "userKey", req.UserKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, receipt)
	}
}

// HandleLeveledUpgrade purchases the next level of a passive upgrade.
// @Summary Buy a passive upgrade level
// @Tags economy
// @Accept json
// @Produce json
// @Param request body LeveledUpgradeRequest true "Upgrade key"
// @Success 200 {object} domain.PurchaseReceipt
// @Router /economy/upgrade [post]
func HandleLeveledUpgrade(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LeveledUpgradeRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		receipt, err := svc.PurchaseLeveledUpgrade(r.Context(), req.UserKey, req.Username, req.Upgrade)
		if err != nil {
			log.Warn("Leveled upgrade rejected", "error", err, "userKey", req.UserKey)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, receipt)
	}
}

// HandleShop returns the upgrade catalog.
// @Summary List purchasable upgrades
// @Tags economy
// @Produce json
// @Success 200 {array} economy.ShopItem
// @Router /economy/shop [get]
func HandleShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, economy.ShopCatalog())
	}
}
