package cmd

import (
	"log/slog"

	"rental/internal/adapters/out/postgres"
	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/ports"
	"rental/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	fileStore  ports.FileStore
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	fileStore ports.FileStore,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		fileStore:  fileStore,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateMotorcycleCommandHandler() commands.CreateMotorcycleCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMotorcycleCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateChangeMotorcyclePlacaCommandHandler() commands.ChangeMotorcyclePlacaCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeMotorcyclePlacaCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMotorcycleByCodeCommandHandler() commands.DeleteMotorcycleByCodeCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMotorcycleByCodeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryDriverCommandHandler() commands.CreateDeliveryDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachDriverCnhImageCommandHandler() commands.AttachDriverCnhImageCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDriverCnhImageCommandHandler(f, c.fileStore)
}

func (c *CompositionRoot) CreateCreateVehicleRentCommandHandler() commands.CreateVehicleRentCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleRentCommandHandler(f)
}

func (c *CompositionRoot) CreateReturnVehicleRentCommandHandler() commands.ReturnVehicleRentCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnVehicleRentCommandHandler(f)
}

func (c *CompositionRoot) CreateListMotorcyclesQueryHandler() queries.ListMotorcyclesQueryHandler {
	return queries.NewListMotorcyclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveryDriversQueryHandler() queries.ListDeliveryDriversQueryHandler {
	return queries.NewListDeliveryDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleRentByIDQueryHandler() queries.GetVehicleRentByIDQueryHandler {
	return queries.NewGetVehicleRentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.publisher, c.logger)
}

type FuncMotorcycleUoWFactory func() commands.MotorcycleUoW

func (f FuncMotorcycleUoWFactory) Create() commands.MotorcycleUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRentalUoWFactory func() commands.RentalUoW

func (f FuncRentalUoWFactory) Create() commands.RentalUoW {
	return f()
}
