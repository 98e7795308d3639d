package checkout

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/everbuy/internal/cart"
	"github.com/everbuy/internal/constants"
	"github.com/everbuy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func cartWith(prices ...string) cart.State {
	store := cart.NewStore()
	for i, price := range prices {
		store.AddItem(models.Product{ID: uint(i + 1), Name: "item", Price: models.MustMoney(price)})
	}
	return store.State()
}

func TestBeginRejectsEmptyCart(t *testing.T) {
	flow, err := Begin(cart.NewStore().State(), time.Now())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if flow != nil {
		t.Fatalf("flow should be nil on error")
	}
}

func TestBeginDefaults(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, constants.CheckoutStepShipping, flow.Step())
	draft := flow.Draft()
	assert.Equal(t, "US", draft.Country)
	assert.Equal(t, constants.PaymentMethodCard, draft.PaymentMethod)
	assert.Empty(t, draft.Email)
}

func TestNextAndBackClampAtEnds(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, flow.Back())
	assert.Equal(t, 2, flow.Next())
	assert.Equal(t, 3, flow.Next())
	assert.Equal(t, 3, flow.Next())
	assert.Equal(t, 2, flow.Back())
}

func TestBackThenNextKeepsDraft(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)

	_, err = flow.UpdateDraft(DraftPatch{
		Email:     strPtr("a@b.co"),
		FirstName: strPtr("Ada"),
		City:      strPtr("Springfield"),
	})
	require.NoError(t, err)
	flow.Next()
	before := flow.Draft()
	step := flow.Step()

	flow.Back()
	flow.Next()

	assert.Equal(t, step, flow.Step())
	assert.Equal(t, before, flow.Draft())
	assert.Equal(t, "Ada", flow.Draft().FirstName)
}

func TestUpdateDraftPatchesOnlyGivenFields(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)

	_, err = flow.UpdateDraft(DraftPatch{Email: strPtr("x@y.z")})
	require.NoError(t, err)
	draft, err := flow.UpdateDraft(DraftPatch{PaymentMethod: strPtr(" PayPal ")})
	require.NoError(t, err)

	assert.Equal(t, "x@y.z", draft.Email)
	assert.Equal(t, constants.PaymentMethodPaypal, draft.PaymentMethod)
	assert.Equal(t, "US", draft.Country)
}

func TestUpdateDraftRejectsUnknownPaymentMethod(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)

	draft, err := flow.UpdateDraft(DraftPatch{
		PaymentMethod: strPtr("bitcoin"),
		Email:         strPtr("ignored@x.y"),
	})
	if !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("expected ErrPaymentMethodInvalid, got %v", err)
	}
	assert.Equal(t, constants.PaymentMethodCard, draft.PaymentMethod)
	assert.Empty(t, flow.Draft().Email)
}

func TestQuoteFreeShippingScenario(t *testing.T) {
	store := cart.NewStore()
	headphones := models.Product{ID: 1, Name: "Wireless Headphones", Price: models.MustMoney("199.99")}
	store.AddItem(headphones)
	store.AddItem(headphones)

	summary := DefaultPricing().Quote(store.State())
	assert.Equal(t, "399.98", summary.Subtotal.String())
	assert.Equal(t, "0.00", summary.ShippingCost.String())
	assert.True(t, summary.FreeShipping)
	assert.Equal(t, "32.00", summary.Tax.String())
	assert.Equal(t, "431.98", summary.FinalTotal.String())
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "399.98", summary.Items[0].LineTotal.String())
}

func TestQuoteFlatShippingAtThreshold(t *testing.T) {
	summary := DefaultPricing().Quote(cartWith("60.00", "40.00"))
	assert.Equal(t, "100.00", summary.Subtotal.String())
	assert.Equal(t, "9.99", summary.ShippingCost.String())
	assert.False(t, summary.FreeShipping)
	assert.Equal(t, "8.00", summary.Tax.String())
	assert.Equal(t, "117.99", summary.FinalTotal.String())
}

func TestStepsReportProgress(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)
	flow.Next()

	steps := flow.Steps()
	require.Len(t, steps, 3)
	assert.True(t, steps[0].Completed)
	assert.False(t, steps[1].Completed)
	assert.True(t, steps[1].Current)
	assert.False(t, steps[2].Completed)
	assert.Equal(t, "Review", steps[2].Title)
}

func TestSubmitRequiresReview(t *testing.T) {
	state := cartWith("10.00")
	flow, err := Begin(state, time.Now())
	require.NoError(t, err)

	_, err = flow.Submit(state, DefaultPricing(), time.Now())
	if !errors.Is(err, ErrStepInvalid) {
		t.Fatalf("expected ErrStepInvalid, got %v", err)
	}
}

func TestSubmitWithEmptyCart(t *testing.T) {
	flow, err := Begin(cartWith("10.00"), time.Now())
	require.NoError(t, err)
	flow.Next()
	flow.Next()

	_, err = flow.Submit(cart.NewStore().State(), DefaultPricing(), time.Now())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	_, err = flow.View(cart.NewStore().State(), DefaultPricing())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("view expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitProducesConfirmation(t *testing.T) {
	state := cartWith("199.99")
	flow, err := Begin(state, time.Now())
	require.NoError(t, err)
	flow.Next()
	flow.Next()

	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	confirmation, err := flow.Submit(state, DefaultPricing(), now)
	require.NoError(t, err)
	assert.Equal(t, constants.OrderPlacedMessage, confirmation.Message)
	assert.Regexp(t, regexp.MustCompile(`^EB-20260309-[0-9A-F]{8}$`), confirmation.OrderNo)
	assert.Equal(t, "199.99", confirmation.Summary.Subtotal.String())
	assert.Equal(t, "0.00", confirmation.Summary.ShippingCost.String())
}
