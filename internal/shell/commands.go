package shell

import (
	"context"
	"fmt"
	"strings"

	"realestate/internal/codec"
	"realestate/internal/domain"
)

// ============================================================================
// Agencies
// ============================================================================

func (s *Shell) addAgency(ctx context.Context, args string) error {
	name, address, err := splitPair(args, "add-agency name|address")
	if err != nil {
		return err
	}
	a := domain.NewAgency(name, address)
	if err := s.services.Agencies.Create(ctx, a); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Inserted rows: 1 (id %d)\n", a.ID)
	return nil
}

func (s *Shell) listAgencies(ctx context.Context, _ string) error {
	list, err := s.services.Agencies.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
	for _, a := range list {
		fmt.Fprintf(s.out, "%d | %s | %s\n", a.ID, a.Name, a.Address)
	}
	return nil
}

func (s *Shell) getAgency(ctx context.Context, args string) error {
	if err := requireArgs(args, "get-agency id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	a, err := s.services.Agencies.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d | %s | %s\n", a.ID, a.Name, a.Address)
	return nil
}

func (s *Shell) updateAgency(ctx context.Context, args string) error {
	const usage = "update-agency id name|address"
	id, rest, err := splitID(args, usage)
	if err != nil {
		return err
	}
	name, address, err := splitPair(rest, usage)
	if err != nil {
		return err
	}
	if err := s.services.Agencies.Update(ctx, id, domain.NewAgency(name, address)); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Updated rows: 1")
	return nil
}

func (s *Shell) deleteAgency(ctx context.Context, args string) error {
	if err := requireArgs(args, "delete-agency id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := s.services.Agencies.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deleted rows: 1")
	return nil
}

// ============================================================================
// Realtors
// ============================================================================

func (s *Shell) addRealtor(ctx context.Context, args string) error {
	if err := requireArgs(args, "add-realtor name"); err != nil {
		return err
	}
	r := domain.NewRealtor(args)
	if err := s.services.Realtors.Create(ctx, r); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Inserted rows: 1 (id %d)\n", r.ID)
	return nil
}

func (s *Shell) listRealtors(ctx context.Context, _ string) error {
	list, err := s.services.Realtors.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
	for _, r := range list {
		fmt.Fprintf(s.out, "%d | %s\n", r.ID, r.Name)
	}
	return nil
}

func (s *Shell) getRealtor(ctx context.Context, args string) error {
	if err := requireArgs(args, "get-realtor id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	r, err := s.services.Realtors.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d | %s\n", r.ID, r.Name)
	return nil
}

func (s *Shell) updateRealtor(ctx context.Context, args string) error {
	id, name, err := splitID(args, "update-realtor id name")
	if err != nil {
		return err
	}
	if err := s.services.Realtors.Update(ctx, id, domain.NewRealtor(name)); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Updated rows: 1")
	return nil
}

func (s *Shell) deleteRealtor(ctx context.Context, args string) error {
	if err := requireArgs(args, "delete-realtor id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := s.services.Realtors.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deleted rows: 1")
	return nil
}

// ============================================================================
// Properties
// ============================================================================

func (s *Shell) printProperty(p domain.Property) {
	fmt.Fprintf(s.out, "%d | %s | %.2f\n", p.ID, p.City, p.Price)
}

func (s *Shell) printProperties(list []domain.Property) {
	if len(list) == 0 {
		fmt.Fprintln(s.out, "(empty)")
	}
	for _, p := range list {
		s.printProperty(p)
	}
}

func (s *Shell) addProperty(ctx context.Context, args string) error {
	city, priceText, err := splitPair(args, "add-property city|price")
	if err != nil {
		return err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return err
	}
	p := domain.NewProperty(city, price)
	if err := s.services.Properties.Create(ctx, p); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Inserted rows: 1 (id %d)\n", p.ID)
	return nil
}

func (s *Shell) listProperties(ctx context.Context, _ string) error {
	list, err := s.services.Properties.List(ctx)
	if err != nil {
		return err
	}
	s.printProperties(list)
	return nil
}

func (s *Shell) getProperty(ctx context.Context, args string) error {
	if err := requireArgs(args, "get-property id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	p, err := s.services.Properties.Get(ctx, id)
	if err != nil {
		return err
	}
	s.printProperty(*p)
	return nil
}

func (s *Shell) updateProperty(ctx context.Context, args string) error {
	const usage = "update-property id city|price"
	id, rest, err := splitID(args, usage)
	if err != nil {
		return err
	}
	city, priceText, err := splitPair(rest, usage)
	if err != nil {
		return err
	}
	price, err := parsePrice(priceText)
	if err != nil {
		return err
	}
	if err := s.services.Properties.Update(ctx, id, domain.NewProperty(city, price)); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Updated rows: 1")
	return nil
}

func (s *Shell) deleteProperty(ctx context.Context, args string) error {
	if err := requireArgs(args, "delete-property id"); err != nil {
		return err
	}
	id, err := parseID(args)
	if err != nil {
		return err
	}
	if err := s.services.Properties.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Deleted rows: 1")
	return nil
}

// searchProperties parses key=value terms. A bare word continues the
// previous value, so "city=Abu Dhabi" works without quoting.
func (s *Shell) searchProperties(ctx context.Context, args string) error {
	const usage = "search-properties [city=X] [min=N] [max=N] [sort=price]"

	var (
		f    domain.PropertyFilter
		city []string
		last string
	)
	for _, tok := range strings.Fields(args) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			if last != "city" {
				return usageError(usage)
			}
			city = append(city, tok)
			continue
		}
		last = key
		switch key {
		case "city":
			city = []string{val}
		case "min":
			n, err := parsePrice(val)
			if err != nil {
				return err
			}
			f.MinPrice = n
		case "max":
			n, err := parsePrice(val)
			if err != nil {
				return err
			}
			f.MaxPrice = n
		case "sort":
			if val != "price" {
				return usageError(usage)
			}
			f.SortByPrice = true
		default:
			return usageError(usage)
		}
	}
	f.City = strings.Join(city, " ")

	list, err := s.services.Properties.Search(ctx, f)
	if err != nil {
		return err
	}
	s.printProperties(list)
	return nil
}

func (s *Shell) commission(ctx context.Context, args string) error {
	const usage = "commission id [house|apartment]"
	if err := requireArgs(args, usage); err != nil {
		return err
	}
	idPart, kind, _ := strings.Cut(args, " ")
	id, err := parseID(idPart)
	if err != nil {
		return err
	}
	q, err := s.services.Properties.Commission(ctx, id, strings.TrimSpace(kind))
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Commission for property %d (%s, %.2f%% of %.2f): %.2f\n",
		q.PropertyID, q.Kind, q.Rate*100, q.Price, q.Commission)
	return nil
}

// ============================================================================
// Export
// ============================================================================

func (s *Shell) export(ctx context.Context, args string) error {
	if s.portfolio == nil {
		return domain.Internal("Export is not available.", nil)
	}
	c, err := codec.ForFormat(args)
	if err != nil {
		return err
	}
	snap, err := s.portfolio.Export(ctx)
	if err != nil {
		return err
	}
	return c.Export(snap, s.out)
}
