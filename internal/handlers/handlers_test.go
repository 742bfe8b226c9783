package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"assetledger/internal/handlers"
	"assetledger/internal/ledger"
	"assetledger/internal/notify"
	"assetledger/internal/routes"
	dbconfig "assetledger/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminAcct  = "admin"
	fundMgr    = "fund-manager"
	sellerAcct = "seller"
	buyerAcct  = "buyer"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handlers-%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbconfig.MigrateModels(db))
	dbconfig.DB = db

	svc, err := ledger.New(db, ledger.NewSettlementLedger(), nil, adminAcct)
	require.NoError(t, err)
	require.NoError(t, svc.GrantRole(adminAcct, ledger.RoleFundManager, fundMgr))
	handlers.Init(svc)

	return routes.SetupRouter(notify.NewHub())
}

func do(t *testing.T, r *gin.Engine, method, path, account string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set("X-Actor", account)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	r := setupRouter(t)
	w := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMutatingRoutesRequireActorHeader(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/assets", "", gin.H{"to": sellerAcct, "total_units": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "X-Actor")
}

func TestMarketplaceFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	// Issue 10 units to the seller.
	w := do(t, r, http.MethodPost, "/assets", fundMgr, gin.H{
		"to": sellerAcct, "total_units": 10,
		"metadata_ref": "https://assets.example/prop-1", "doc_hash": "doc-hash-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assetID := int(decode(t, w)["asset_id"].(float64))

	// Fund the buyer and approve the custody pull.
	w = do(t, r, http.MethodPost, "/settlement/faucet", adminAcct, gin.H{"account": buyerAcct, "amount": 100})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/settlement/approve", buyerAcct, gin.H{"amount": 100})
	require.Equal(t, http.StatusOK, w.Code)

	// List 5 units at 10 each.
	w = do(t, r, http.MethodPost, "/marketplace/listings", sellerAcct, gin.H{
		"asset_id": assetID, "price_per_unit": 10, "units": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	listingID := int(decode(t, w)["listing_id"].(float64))

	// Partial fill.
	w = do(t, r, http.MethodPost, fmt.Sprintf("/marketplace/listings/%d/purchase", listingID),
		buyerAcct, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	// Buying more than remains is rejected without touching state.
	w = do(t, r, http.MethodPost, fmt.Sprintf("/marketplace/listings/%d/purchase", listingID),
		buyerAcct, gin.H{"quantity": 3})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/marketplace/listings/%d", listingID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decode(t, w)
	assert.Equal(t, float64(2), listing["units_available"])
	assert.Equal(t, true, listing["active"])

	// Balances reflect the fill.
	w = do(t, r, http.MethodGet, fmt.Sprintf("/assets/%d/balances/%s", assetID, buyerAcct), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decode(t, w)["units"])

	w = do(t, r, http.MethodGet, "/settlement/"+sellerAcct, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(30), decode(t, w)["balance"])

	// Seller cancels the remainder.
	w = do(t, r, http.MethodPost, fmt.Sprintf("/marketplace/listings/%d/cancel", listingID), sellerAcct, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/assets/%d/balances/%s", assetID, sellerAcct), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(7), decode(t, w)["units"])
}

func TestRevenueFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/assets", fundMgr, gin.H{
		"to": sellerAcct, "total_units": 10, "metadata_ref": "ref", "doc_hash": "hash",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assetID := int(decode(t, w)["asset_id"].(float64))

	w = do(t, r, http.MethodPost, fmt.Sprintf("/assets/%d/transfer", assetID), sellerAcct, gin.H{
		"from": sellerAcct, "to": buyerAcct, "units": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Fund the distributor.
	w = do(t, r, http.MethodPost, "/settlement/faucet", adminAcct, gin.H{"account": fundMgr, "amount": 99})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/settlement/approve", fundMgr, gin.H{"amount": 99})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/revenue/distribute", fundMgr, gin.H{
		"asset_id": assetID, "net_amount": 99,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	snapshotID := int(decode(t, w)["snapshot_id"].(float64))

	w = do(t, r, http.MethodGet, fmt.Sprintf("/revenue/snapshots/%d", snapshotID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Buyer holds 4 of 10 units: floor(99*4/10) = 39.
	w = do(t, r, http.MethodPost, "/revenue/claim", buyerAcct, gin.H{
		"holder": buyerAcct, "asset_id": assetID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(39), decode(t, w)["paid"])

	// Second claim has nothing outstanding.
	w = do(t, r, http.MethodPost, "/revenue/claim", buyerAcct, gin.H{
		"holder": buyerAcct, "asset_id": assetID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	r := setupRouter(t)

	// Unauthorized role mapped to 403.
	w := do(t, r, http.MethodPost, "/assets", buyerAcct, gin.H{"to": buyerAcct, "total_units": 10})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown listing mapped to 404.
	w = do(t, r, http.MethodPost, "/marketplace/listings/999/purchase", buyerAcct, gin.H{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Duplicate proposal handle mapped to 409.
	w = do(t, r, http.MethodPost, "/governance/proposals", adminAcct, gin.H{
		"handle": "upgrade-v2", "module": "Marketplace",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/governance/proposals", adminAcct, gin.H{
		"handle": "upgrade-v2", "module": "Marketplace",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Malformed body mapped to 400.
	w = do(t, r, http.MethodPost, "/governance/proposals", adminAcct, gin.H{"module": "Marketplace"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPausedModuleMapsToServiceUnavailable(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/assets", fundMgr, gin.H{
		"to": sellerAcct, "total_units": 10, "metadata_ref": "ref", "doc_hash": "hash",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assetID := int(decode(t, w)["asset_id"].(float64))

	w = do(t, r, http.MethodPost, "/governance/pause", adminAcct, gin.H{"module": ledger.ModuleMarketplace})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/marketplace/listings", sellerAcct, gin.H{
		"asset_id": assetID, "price_per_unit": 10, "units": 5,
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Non-admins cannot unpause.
	w = do(t, r, http.MethodPost, "/governance/unpause", sellerAcct, gin.H{"module": ledger.ModuleMarketplace})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPost, "/governance/unpause", adminAcct, gin.H{"module": ledger.ModuleMarketplace})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodPost, "/marketplace/listings", sellerAcct, gin.H{
		"asset_id": assetID, "price_per_unit": 10, "units": 5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGovernanceParamsOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPut, "/governance/params", adminAcct, gin.H{
		"max_sell_percent": 50, "signer_threshold": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/governance/params", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	params := decode(t, w)
	assert.Equal(t, float64(50), params["max_sell_percent"])
	assert.Equal(t, float64(2), params["proposal_signer_threshold"])

	// The threshold cap now rejects an oversized primary listing.
	w = do(t, r, http.MethodPost, "/assets", fundMgr, gin.H{
		"to": sellerAcct, "total_units": 10, "metadata_ref": "ref", "doc_hash": "hash",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assetID := int(decode(t, w)["asset_id"].(float64))

	w = do(t, r, http.MethodPost, "/marketplace/listings", sellerAcct, gin.H{
		"asset_id": assetID, "price_per_unit": 10, "units": 6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuditLogOverHTTP(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/governance/audit-events", adminAcct, gin.H{
		"action_type": "COMPLIANCE_REVIEW", "detail": "quarterly review opened",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/audit-log?action_type=COMPLIANCE_REVIEW", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	entries, ok := page["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "COMPLIANCE_REVIEW", entry["action_type"])
	assert.Equal(t, adminAcct, entry["actor"])
}
