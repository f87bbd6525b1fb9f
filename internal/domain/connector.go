package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nwave-fx/fxpipe/internal/adapter"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Connector drives a pair connector Session from user actions and applies the
// resolved pairs to the host scene.
//
//nolint:interfacebloat // One method per user action.
type Connector interface {
	Session() *Session
	LoadSelection(ctx context.Context, role m.Role) (int, error)
	LoadPaths(ctx context.Context, role m.Role, paths []string) (int, error)
	RemoveItem(role m.Role, name string) error
	ClearItems(role m.Role)
	SelectItem(ctx context.Context, role m.Role, name string) error
	SelectPaired(ctx context.Context, role m.Role, name string) error
	EditPair(role m.Role, name string) (*m.Item, []*m.Item, error)
	EditPairAdd(ctx context.Context) (int, error)
	EditPairAddNames(names ...string) error
	EditPairRemove(names ...string) error
	ResetPairs(role m.Role, name string) error
	Connect(ctx context.Context) ([]m.ConnectResult, error)
	Plan(scene m.Path) m.Plan
	ExportPlan(path m.Path, scene m.Path) (m.Plan, error)
}

type connector struct {
	scene   adapter.SceneAdapter
	plans   adapter.PlanStore
	session *Session
	logger  *slog.Logger
}

// NewConnector wires a session to a scene adapter and a plan store.
func NewConnector(scene adapter.SceneAdapter, plans adapter.PlanStore, session *Session, logger *slog.Logger) Connector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &connector{
		scene:   scene,
		plans:   plans,
		session: session,
		logger:  logger,
	}
}

func (c *connector) Session() *Session {
	return c.session
}

// LoadSelection builds items of role from the host selection. Degenerate
// meshes and names already loaded in either role are skipped.
func (c *connector) LoadSelection(ctx context.Context, role m.Role) (int, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %v", m.ErrInvalidRole, role)
	}

	nodes, err := c.scene.Selection(ctx)
	if err != nil {
		return 0, fmt.Errorf("read selection: %w", err)
	}

	return c.addNodes(ctx, role, nodes)
}

// LoadPaths loads the nodes at paths as role without touching the host
// selection. Nodes without a mesh shape are ignored.
func (c *connector) LoadPaths(ctx context.Context, role m.Role, paths []string) (int, error) {
	if !role.Valid() {
		return 0, fmt.Errorf("%w: %v", m.ErrInvalidRole, role)
	}

	nodes := make([]m.SceneNode, 0, len(paths))

	for _, path := range paths {
		node, err := c.scene.Node(ctx, path)
		if err != nil {
			return 0, fmt.Errorf("load %s items: %w", role, err)
		}

		if !node.IsMeshTransform() {
			c.logger.Debug("node without mesh skipped", "path", path)

			continue
		}

		nodes = append(nodes, node)
	}

	return c.addNodes(ctx, role, nodes)
}

func (c *connector) addNodes(ctx context.Context, role m.Role, nodes []m.SceneNode) (int, error) {
	items := make([]*m.Item, 0, len(nodes))

	for _, node := range nodes {
		displayName, err := c.scene.DisplayName(ctx, node.Path)
		if err != nil {
			return 0, fmt.Errorf("display name of %s: %w", node.Path, err)
		}

		item, ok := BuildItem(role, node, displayName)
		if !ok {
			c.logger.Debug("degenerate geometry skipped", "path", node.Path)

			continue
		}

		items = append(items, item)
	}

	added := c.session.AddItems(items...)
	c.logger.Info("items loaded", "role", role, "nodes", len(nodes), "added", added)

	return added, nil
}

func (c *connector) RemoveItem(role m.Role, name string) error {
	if !c.session.RemoveItem(role, name) {
		return fmt.Errorf("%w: %s %q", m.ErrItemNotFound, role, name)
	}

	return nil
}

func (c *connector) ClearItems(role m.Role) {
	c.session.ClearItems(role)
}

func (c *connector) SelectItem(ctx context.Context, role m.Role, name string) error {
	item, ok := c.session.Item(role, name)
	if !ok {
		return nil
	}

	return c.scene.Select(ctx, []string{item.FullPath})
}

func (c *connector) SelectPaired(ctx context.Context, role m.Role, name string) error {
	item, ok := c.session.Item(role, name)
	if !ok {
		return nil
	}

	paired := c.session.PairedItems(item)
	paths := make([]string, 0, len(paired))

	for _, p := range paired {
		paths = append(paths, p.FullPath)
	}

	return c.scene.Select(ctx, paths)
}

func (c *connector) EditPair(role m.Role, name string) (*m.Item, []*m.Item, error) {
	item, ok := c.session.EditPair(role, name)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s %q", m.ErrItemNotFound, role, name)
	}

	return item, c.session.PairedItems(item), nil
}

func (c *connector) edited() (*m.Item, error) {
	item := c.session.Edited()
	if item == nil {
		return nil, errors.New("no pair is being edited")
	}

	return item, nil
}

// EditPairAdd pairs the edited item with the host selection.
func (c *connector) EditPairAdd(ctx context.Context) (int, error) {
	edited, err := c.edited()
	if err != nil {
		return 0, err
	}

	nodes, err := c.scene.Selection(ctx)
	if err != nil {
		return 0, fmt.Errorf("read selection: %w", err)
	}

	added := 0

	for _, node := range nodes {
		displayName, err := c.scene.DisplayName(ctx, node.Path)
		if err != nil {
			return added, fmt.Errorf("display name of %s: %w", node.Path, err)
		}

		other, ok := c.session.Item(edited.Role.Opposite(), displayName)
		if !ok {
			continue
		}

		if err := c.session.AddOverride(edited, other); err != nil {
			return added, err
		}

		added++
	}

	return added, nil
}

func (c *connector) editOverrides(names []string, apply func(a, b *m.Item) error) error {
	edited, err := c.edited()
	if err != nil {
		return err
	}

	for _, name := range names {
		other, ok := c.session.Item(edited.Role.Opposite(), name)
		if !ok {
			return fmt.Errorf("%w: %s %q", m.ErrItemNotFound, edited.Role.Opposite(), name)
		}

		if err := apply(edited, other); err != nil {
			return err
		}
	}

	return nil
}

func (c *connector) EditPairAddNames(names ...string) error {
	return c.editOverrides(names, c.session.AddOverride)
}

func (c *connector) EditPairRemove(names ...string) error {
	return c.editOverrides(names, c.session.RemoveOverride)
}

func (c *connector) ResetPairs(role m.Role, name string) error {
	item, ok := c.session.Item(role, name)
	if !ok {
		return fmt.Errorf("%w: %s %q", m.ErrItemNotFound, role, name)
	}

	c.session.ClearItemOverrides(item)

	return nil
}

// Connect applies every resolved pair inside one host batch. Failures of a
// single pair are reported in its result and do not stop the batch.
func (c *connector) Connect(ctx context.Context) (results []m.ConnectResult, err error) {
	if !c.session.CanConnect() {
		return nil, m.ErrMultiPairs
	}

	realizations := c.session.Realizations()

	if err := c.scene.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin connect: %w", err)
	}

	defer func() {
		if commitErr := c.scene.Commit(ctx); commitErr != nil && err == nil {
			err = fmt.Errorf("commit connect: %w", commitErr)
		}
	}()

	results = make([]m.ConnectResult, 0, len(realizations))

	for _, r := range realizations {
		status, applyErr := c.scene.Apply(ctx, r)
		result := m.ConnectResult{Realization: r, Status: status, Err: applyErr}

		if applyErr != nil {
			if status != m.StatusConflict && errors.Is(applyErr, m.ErrLockedAttribute) {
				result.Status = m.StatusConflict
			} else if status != m.StatusConflict {
				result.Status = m.StatusError
			}

			result.Message = applyErr.Error()
			c.logger.Warn("pair not connected", "source", r.Source.DisplayName, "destination", r.Destination.DisplayName, "error", applyErr)
		}

		results = append(results, result)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}
	}

	c.logger.Info("connect finished", "pairs", len(results), "mode", c.session.Config().ConnectionMode)

	return results, nil
}

// Plan returns the resolved pairs as an exportable plan.
func (c *connector) Plan(scene m.Path) m.Plan {
	realizations := c.session.Realizations()
	plan := m.Plan{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Scene:     scene,
		Config:    c.session.Config(),
		Pairs:     make([]m.PlanPair, 0, len(realizations)),
	}

	for _, r := range realizations {
		plan.Pairs = append(plan.Pairs, m.PlanPair{Source: r.Source.FullPath, Destination: r.Destination.FullPath})
	}

	return plan
}

func (c *connector) ExportPlan(path m.Path, scene m.Path) (m.Plan, error) {
	plan := c.Plan(scene)
	if err := c.plans.SavePlan(path, plan); err != nil {
		return m.Plan{}, err
	}

	c.logger.Info("plan exported", "path", path, "id", plan.ID, "pairs", len(plan.Pairs))

	return plan, nil
}
