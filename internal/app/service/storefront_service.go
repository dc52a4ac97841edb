package service

import (
	"fmt"
	"sync"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/repository"
	"github.com/citra/storefront/pkg/logger"
	"github.com/google/uuid"
)

const DefaultHomeSectionLimit = 5

// CatalogService exposes read-only catalog queries, safe to call on every render
type CatalogService interface {
	Categories() model.Taxonomy
	Category(categoryID string) (model.Category, error)
	SubCategoryOptions(categoryID string) ([]model.SubCategory, error)
	Product(productID string) (model.Product, error)
	Banners() []string
	Home() HomePage
}

// ShopperService groups the per-session selection, cart and favorites operations
type ShopperService interface {
	NewSession() SessionView
	EndSession(sessionID string) bool
	Session(sessionID string) (SessionView, error)
	SetAdminMode(sessionID string, enabled bool) (SessionView, error)

	Selection(sessionID string) (model.Selection, error)
	SelectCategory(sessionID, categoryID string) (model.Selection, error)
	SelectSubCategory(sessionID, subCategoryID string) (model.Selection, error)
	SelectSubSubCategory(sessionID, subSubCategoryID string) (model.Selection, error)
	SetSearch(sessionID, text string) (model.Selection, error)
	Navigate(sessionID string, path model.CategoryPath) (model.Selection, error)
	ResetSelection(sessionID string) (model.Selection, error)
	Products(sessionID string) ([]model.Product, error)

	Cart(sessionID string) (CartSummary, error)
	AddToCart(sessionID, productID string) (CartSummary, error)
	SetCartQuantity(sessionID, productID string, quantity int) (CartSummary, error)
	AdjustCartQuantity(sessionID, productID string, delta int) (CartSummary, error)
	RemoveFromCart(sessionID, productID string) (CartSummary, error)
	ClearCart(sessionID string) (CartSummary, error)

	ToggleFavorite(sessionID, productID string) (bool, error)
	IsFavorite(sessionID, productID string) (bool, error)
	Favorites(sessionID string) ([]string, error)
}

type HomePage struct {
	Banners     []string        `json:"banners"`
	Categories  model.Taxonomy  `json:"categories"`
	NewArrivals []model.Product `json:"newArrivals"`
	Bestsellers []model.Product `json:"bestsellers"`
	BestDeals   []model.Product `json:"bestDeals"`
}

type CartSummary struct {
	Lines []model.CartLine `json:"lines"`
	Count int              `json:"count"`
	Total int64            `json:"total"`
}

type SessionView struct {
	ID             string          `json:"id"`
	AdminMode      bool            `json:"adminMode"`
	Selection      model.Selection `json:"selection"`
	CartCount      int             `json:"cartCount"`
	CartTotal      int64           `json:"cartTotal"`
	FavoritesCount int             `json:"favoritesCount"`
}

type session struct {
	id        string
	adminMode bool
	selection SelectionService
	cart      CartService
	favorites FavoritesService
	pending   []model.PendingAction // request order

	notifications []model.Notification
}

// takePending removes the pending action with id, reporting whether it existed
func (s *session) takePending(id string) (model.PendingAction, bool) {
	for i, a := range s.pending {
		if a.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return a, true
		}
	}
	return model.PendingAction{}, false
}

func (s *session) view() SessionView {
	return SessionView{
		ID:             s.id,
		AdminMode:      s.adminMode,
		Selection:      s.selection.Current(),
		CartCount:      s.cart.Count(),
		CartTotal:      s.cart.Total(),
		FavoritesCount: s.favorites.Count(),
	}
}

func (s *session) cartSummary() CartSummary {
	return CartSummary{
		Lines: s.cart.Lines(),
		Count: s.cart.Count(),
		Total: s.cart.Total(),
	}
}

type StorefrontOptions struct {
	Taxonomy  repository.TaxonomyRepository
	Products  repository.ProductRepository
	Banners   repository.BannerRepository
	Snapshots repository.CatalogSnapshotRepository // optional
	Notifier  Notifier                             // defaults to logging

	HomeSectionLimit    int
	RequireConfirmation bool
}

// Storefront owns the shared catalog and every shopper session.
// One mutex serializes all calls so the components underneath stay single-threaded.
type Storefront struct {
	mu sync.Mutex

	taxonomy  repository.TaxonomyRepository
	products  repository.ProductRepository
	banners   repository.BannerRepository
	snapshots repository.CatalogSnapshotRepository
	notifier  Notifier

	sessions            map[string]*session
	homeSectionLimit    int
	requireConfirmation bool
}

func NewStorefront(opts StorefrontOptions) *Storefront {
	s := &Storefront{
		taxonomy:            opts.Taxonomy,
		products:            opts.Products,
		banners:             opts.Banners,
		snapshots:           opts.Snapshots,
		notifier:            opts.Notifier,
		sessions:            make(map[string]*session),
		homeSectionLimit:    opts.HomeSectionLimit,
		requireConfirmation: opts.RequireConfirmation,
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier()
	}
	if s.homeSectionLimit <= 0 {
		s.homeSectionLimit = DefaultHomeSectionLimit
	}
	// runs inside whichever locked facade call mutated the taxonomy
	s.taxonomy.Subscribe(s.onTaxonomyChanged)
	return s
}

// NewStorefrontFromSnapshot builds in-memory stores from snapshot and wires them into a Storefront.
// Store fields already set on opts are replaced.
func NewStorefrontFromSnapshot(snapshot model.CatalogSnapshot, opts StorefrontOptions) (*Storefront, error) {
	taxonomy, err := repository.NewTaxonomyRepository(snapshot.Categories)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := repository.NewProductRepository(taxonomy, snapshot.Products)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	banners, err := repository.NewBannerRepository(snapshot.Banners)
	if err != nil {
		return nil, fmt.Errorf("load banners: %w", err)
	}

	opts.Taxonomy = taxonomy
	opts.Products = products
	opts.Banners = banners

	logger.Info("Catalog loaded", logger.Fields{
		"categories": len(snapshot.Categories),
		"products":   products.Count(),
		"banners":    len(snapshot.Banners),
	})
	return NewStorefront(opts), nil
}

func (s *Storefront) onTaxonomyChanged(tree model.Taxonomy) {
	reconciled := 0
	for _, sess := range s.sessions {
		if sess.selection.Reconcile(tree) {
			reconciled++
		}
	}

	warnings := CheckIntegrity(tree, s.products.GetAll())
	for _, w := range warnings {
		logger.Warn("Product references missing taxonomy node", logger.Fields{
			"product_id": w.ProductID,
			"level":      w.Level,
			"reference":  w.Reference,
		})
	}

	logger.Info("Taxonomy changed", logger.Fields{
		"sessions_reconciled": reconciled,
		"integrity_warnings":  len(warnings),
	})
}

// RequiresConfirmation reports whether destructive HTTP admin calls go through PendingAction
func (s *Storefront) RequiresConfirmation() bool {
	return s.requireConfirmation
}

func (s *Storefront) session(sessionID string) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

// ---- catalog queries ----

func (s *Storefront) Categories() model.Taxonomy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taxonomy.Tree()
}

func (s *Storefront) Category(categoryID string) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taxonomy.FindCategory(categoryID)
}

// SubCategoryOptions lists the sub-categories a product form may pick under categoryID
func (s *Storefront) SubCategoryOptions(categoryID string) ([]model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, err := s.taxonomy.FindCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return cat.SubCategories, nil
}

func (s *Storefront) Product(productID string) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.FindByID(productID)
}

func (s *Storefront) Banners() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banners.List()
}

func (s *Storefront) Home() HomePage {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.products.GetAll()
	return HomePage{
		Banners:     s.banners.List(),
		Categories:  s.taxonomy.Tree(),
		NewArrivals: NewArrivals(all, s.homeSectionLimit),
		Bestsellers: Bestsellers(all, s.homeSectionLimit),
		BestDeals:   BestDeals(all, s.homeSectionLimit),
	}
}

// ---- sessions ----

func (s *Storefront) NewSession() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:        uuid.New().String(),
		selection: NewSelectionService(),
		cart:      NewCartService(),
		favorites: NewFavoritesService(),
	}
	s.sessions[sess.id] = sess

	logger.Info("Session started", logger.Fields{
		"session_id": sess.id,
		"sessions":   len(s.sessions),
	})
	return sess.view()
}

func (s *Storefront) EndSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}
	delete(s.sessions, sessionID)
	logger.Info("Session ended", logger.Fields{
		"session_id": sessionID,
	})
	return true
}

func (s *Storefront) Session(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	return sess.view(), nil
}

func (s *Storefront) SetAdminMode(sessionID string, enabled bool) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	sess.adminMode = enabled
	if !enabled {
		sess.pending = nil
	}
	logger.Info("Admin mode changed", logger.Fields{
		"session_id": sessionID,
		"enabled":    enabled,
	})
	return sess.view(), nil
}

// ---- selection ----

func (s *Storefront) Selection(sessionID string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	return sess.selection.Current(), nil
}

// SelectCategory toggles off when categoryID is already selected; otherwise the category must exist
func (s *Storefront) SelectCategory(sessionID, categoryID string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	cur := sess.selection.Current()
	if categoryID != "" && categoryID != cur.CategoryID &&
		!s.taxonomy.Exists(model.CategoryPath{CategoryID: categoryID}) {
		return cur, &model.NotFoundError{Kind: "category", ID: categoryID}
	}
	return sess.selection.SelectCategory(categoryID), nil
}

func (s *Storefront) SelectSubCategory(sessionID, subCategoryID string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	cur := sess.selection.Current()
	target := model.CategoryPath{CategoryID: cur.CategoryID, SubCategoryID: subCategoryID}
	if cur.CategoryID != "" && subCategoryID != "" && subCategoryID != cur.SubCategoryID &&
		!s.taxonomy.Exists(target) {
		return cur, &model.NotFoundError{Kind: "sub-category", ID: target.String()}
	}
	return sess.selection.SelectSubCategory(subCategoryID)
}

func (s *Storefront) SelectSubSubCategory(sessionID, subSubCategoryID string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	cur := sess.selection.Current()
	target := model.CategoryPath{
		CategoryID:       cur.CategoryID,
		SubCategoryID:    cur.SubCategoryID,
		SubSubCategoryID: subSubCategoryID,
	}
	if cur.SubCategoryID != "" && subSubCategoryID != "" && subSubCategoryID != cur.SubSubCategoryID &&
		!s.taxonomy.Exists(target) {
		return cur, &model.NotFoundError{Kind: "sub-sub-category", ID: target.String()}
	}
	return sess.selection.SelectSubSubCategory(subSubCategoryID)
}

func (s *Storefront) SetSearch(sessionID, text string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	return sess.selection.SetSearch(text), nil
}

func (s *Storefront) Navigate(sessionID string, path model.CategoryPath) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	if path.Depth() > 0 && !s.taxonomy.Exists(path) {
		return sess.selection.Current(), &model.NotFoundError{Kind: "category path", ID: path.String()}
	}
	return sess.selection.Navigate(path)
}

func (s *Storefront) ResetSelection(sessionID string) (model.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return model.Selection{}, err
	}
	return sess.selection.Reset(), nil
}

// Products is the filtered listing for the session's current selection
func (s *Storefront) Products(sessionID string) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sel := sess.selection.Current()
	return FilterProducts(s.products.GetByCategory(sel.Path()), sel), nil
}

// ---- cart ----

func (s *Storefront) Cart(sessionID string) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	return sess.cartSummary(), nil
}

func (s *Storefront) AddToCart(sessionID, productID string) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	product, err := s.products.FindByID(productID)
	if err != nil {
		logger.Warn("Cannot add to cart: product not found", logger.Fields{
			"session_id": sessionID,
			"product_id": productID,
		})
		return sess.cartSummary(), err
	}
	line := sess.cart.Add(product)

	logger.Info("Cart item added", logger.Fields{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   line.Quantity,
	})
	return sess.cartSummary(), nil
}

func (s *Storefront) SetCartQuantity(sessionID, productID string, quantity int) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	if err := sess.cart.SetQuantity(productID, quantity); err != nil {
		return sess.cartSummary(), err
	}
	return sess.cartSummary(), nil
}

func (s *Storefront) AdjustCartQuantity(sessionID, productID string, delta int) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	if _, err := sess.cart.AdjustQuantity(productID, delta); err != nil {
		return sess.cartSummary(), err
	}
	return sess.cartSummary(), nil
}

func (s *Storefront) RemoveFromCart(sessionID, productID string) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	sess.cart.Remove(productID)
	return sess.cartSummary(), nil
}

func (s *Storefront) ClearCart(sessionID string) (CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	sess.cart.Clear()
	return sess.cartSummary(), nil
}

// ---- favorites ----

func (s *Storefront) ToggleFavorite(sessionID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return false, err
	}
	return sess.favorites.Toggle(productID), nil
}

func (s *Storefront) IsFavorite(sessionID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return false, err
	}
	return sess.favorites.IsFavorite(productID), nil
}

func (s *Storefront) Favorites(sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.favorites.List(), nil
}
